package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mvmapper/internal/model"
	"go-mvmapper/internal/store"
)

func TestCreateExportRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"analysis":`},
		{name: "missing analysis", body: `{"metadata":"meta.csv"}`},
		{name: "missing metadata", body: `{"analysis":"result.json"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			CreateExport(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateExportFailureRecordsOneError(t *testing.T) {
	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, SetOutputDir(t.TempDir()))

	body := fmt.Sprintf(`{"analysis":%q,"metadata":"meta.csv"}`,
		filepath.Join(t.TempDir(), "absent.json"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateExport(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	runID, _ := resp["runID"].(string)
	require.NotEmpty(t, runID)
	assert.Equal(t, fmt.Sprintf("/api/v1/download/%s/mvmapper_data.csv", runID), resp["downloadURL"])

	require.Eventually(t, func() bool {
		run, err := store.GetExport(runID)
		return err == nil && run.Status == model.StatusFailed
	}, 2*time.Second, 20*time.Millisecond)

	// A single failed run records exactly one error.
	msgs, err := store.GetExportErrors(runID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "failed to open analysis result")
}

func TestRunIDFromPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		suffix string
		wantID string
		wantOK bool
	}{
		{name: "plain id", path: "/api/v1/exports/abc-123", wantID: "abc-123", wantOK: true},
		{name: "id with suffix", path: "/api/v1/exports/abc-123/errors", suffix: "/errors", wantID: "abc-123", wantOK: true},
		{name: "empty id", path: "/api/v1/exports/", wantOK: false},
		{name: "wrong prefix", path: "/api/v1/other/abc", wantOK: false},
		{name: "nested id", path: "/api/v1/exports/a/b", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			id, ok := runIDFromPath(rec, tt.path, tt.suffix)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			} else {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}
