package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mvmapper/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func TestSaveAndGetExport(t *testing.T) {
	initTestDB(t)

	req := model.ExportRequest{
		Analysis: "result.json",
		Metadata: "meta.csv",
		OutFile:  "out.csv",
	}
	require.NoError(t, SaveExport("run-1", req))

	run, err := GetExport("run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, model.StatusPending, run.Status)
	assert.Equal(t, req, run.Spec)
	assert.NotEmpty(t, run.CreatedAt)
}

func TestUpdateExportStatus(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveExport("run-1", model.ExportRequest{Analysis: "a", Metadata: "m"}))

	require.NoError(t, UpdateExportStatus("run-1", model.StatusRunning))

	run, err := GetExport("run-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRunning, run.Status)
}

func TestSetExportResult(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveExport("run-1", model.ExportRequest{Analysis: "a", Metadata: "m"}))

	require.NoError(t, SetExportResult("run-1", 42, 7, "outputs/run-1/mvmapper_data.csv"))

	run, err := GetExport("run-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, run.Status)
	assert.Equal(t, 42, run.RowCount)
	assert.Equal(t, 7, run.ColCount)
	assert.Equal(t, "outputs/run-1/mvmapper_data.csv", run.OutputPath)
}

func TestExportErrors(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveExport("run-1", model.ExportRequest{Analysis: "a", Metadata: "m"}))

	// Nil errors are ignored.
	require.NoError(t, SaveExportError("run-1", nil))
	require.NoError(t, SaveExportError("run-1", errors.New("metadata is missing required column \"lon\"")))

	msgs, err := GetExportErrors("run-1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "lon")
}

func TestListExports(t *testing.T) {
	initTestDB(t)

	runs, err := ListExports()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, SaveExport("run-1", model.ExportRequest{Analysis: "a", Metadata: "m"}))
	require.NoError(t, SaveExport("run-2", model.ExportRequest{Analysis: "b", Metadata: "m"}))

	runs, err = ListExports()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestGetExportUnknown(t *testing.T) {
	initTestDB(t)

	_, err := GetExport("missing")
	assert.Error(t, err)
}
