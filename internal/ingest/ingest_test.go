package ingest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mvmapper/internal/analysis"
)

const metadataCSV = "key,lat,lon,site\nA,40.5,-3.25,madrid\nB,41,2,barcelona\n"

func TestReadMetadataFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.csv")
	require.NoError(t, os.WriteFile(path, []byte(metadataCSV), 0644))

	tbl, err := ReadMetadata(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"key", "lat", "lon", "site"}, tbl.Columns())
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []interface{}{"A", 40.5, -3.25, "madrid"}, tbl.Row(0))
}

func TestReadMetadataFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(metadataCSV))
	}))
	defer srv.Close()

	tbl, err := ReadMetadata(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
}

func TestReadMetadataHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := ReadMetadata(srv.URL)
	assert.Error(t, err)
}

func TestReadMetadataLocalFileWithHTTPLikeName(t *testing.T) {
	// A file whose name merely starts with "http" is still a local path.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.WriteFile("httpdata.csv", []byte(metadataCSV), 0644))

	tbl, err := ReadMetadata("httpdata.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
}

func TestReadMetadataMissingFile(t *testing.T) {
	_, err := ReadMetadata(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadAnalysis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	doc := `{"type":"spca","keys":["A"],"scores":[[0.1,0.2]],"lag_scores":[[0.05,0.1]]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	res, err := ReadAnalysis(path)
	require.NoError(t, err)

	s, ok := res.(*analysis.SpatialComponent)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, s.Keys)
	assert.Equal(t, [][]float64{{0.05, 0.1}}, s.LagScores)
}

func TestReadAnalysisMissingFile(t *testing.T) {
	_, err := ReadAnalysis(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
