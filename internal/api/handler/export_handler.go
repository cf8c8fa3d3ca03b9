package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-mvmapper/internal/export"
	"go-mvmapper/internal/model"
	"go-mvmapper/internal/store"
	"go-mvmapper/pkg/utils"
)

// outputs holds per-run export files served by DownloadFile.
var outputs = utils.NewOutputManager("outputs")

// SetOutputDir changes where run output files are stored and makes sure the
// directory exists.
func SetOutputDir(dir string) error {
	outputs = utils.NewOutputManager(dir)
	return outputs.EnsureOutputDirExists()
}

// CreateExport creates a new export run
// @Summary Create a new export
// @Description Start a new export run merging an analysis result with entity metadata
// @Tags exports
// @Accept json
// @Produce json
// @Param export body model.ExportRequest true "Export configuration"
// @Success 200 {object} map[string]interface{} "Export created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exports [post]
func CreateExport(w http.ResponseWriter, r *http.Request) {
	var req model.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if req.Analysis == "" {
		http.Error(w, "An analysis result file is required", http.StatusBadRequest)
		return
	}
	if req.Metadata == "" {
		http.Error(w, "A metadata source is required", http.StatusBadRequest)
		return
	}

	runID := uuid.New().String()

	if err := store.SaveExport(runID, req); err != nil {
		http.Error(w, "Failed to save export", http.StatusInternalServerError)
		return
	}

	// Run asynchronously under the requested timeout; Run itself persists
	// status and failure details.
	ctx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(req.Timeout))
	go func() {
		defer cancel()
		export.Run(ctx, runID, req, outputs)
	}()

	resp := map[string]interface{}{
		"message":   "Export created successfully!",
		"runID":     runID,
		"status":    model.StatusPending,
		"createdAt": time.Now().UTC(),
	}
	if !req.NoWrite {
		name := req.OutFile
		if name == "" {
			name = export.DefaultRunFileName
		}
		resp["downloadURL"] = outputs.GetDownloadURL(runID, name)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListExports retrieves all export runs
// @Summary List all exports
// @Description Get a list of all export runs with their current status
// @Tags exports
// @Accept json
// @Produce json
// @Success 200 {array} model.ExportRun "List of exports"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exports [get]
func ListExports(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListExports()
	if err != nil {
		http.Error(w, "Failed to fetch exports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetExport retrieves a specific export run
// @Summary Get export
// @Description Retrieve details of a specific export run
// @Tags exports
// @Accept json
// @Produce json
// @Param id path string true "Export run ID"
// @Success 200 {object} model.ExportRun "Export details"
// @Failure 400 {object} map[string]interface{} "Invalid export ID"
// @Failure 404 {object} map[string]interface{} "Export not found"
// @Router /exports/{id} [get]
func GetExport(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r.URL.Path, "")
	if !ok {
		return
	}

	run, err := store.GetExport(runID)
	if err != nil {
		http.Error(w, "Export not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetExportErrors retrieves errors for an export run
// @Summary Get export errors
// @Description Retrieve all errors recorded for an export run
// @Tags exports
// @Accept json
// @Produce json
// @Param id path string true "Export run ID"
// @Success 200 {object} map[string]interface{} "Export errors"
// @Failure 400 {object} map[string]interface{} "Invalid export ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exports/{id}/errors [get]
func GetExportErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r.URL.Path, "/errors")
	if !ok {
		return
	}

	errs, err := store.GetExportErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"errors": errs,
		"count":  len(errs),
	})
}

// DownloadFile serves an export output file for download
// @Summary Download file
// @Description Download an output file produced by an export run
// @Tags files
// @Accept json
// @Produce text/csv
// @Param runID path string true "Export run ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 400 {object} map[string]interface{} "Invalid URL format"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{runID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/runID/filename
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	runID := pathParts[3]
	fileName := pathParts[4]

	filePath, err := outputs.GetOutputFilePath(runID, fileName)
	if err != nil {
		http.Error(w, "Failed to resolve file path", http.StatusInternalServerError)
		return
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	w.Header().Set("Content-Type", "text/csv")
	http.ServeFile(w, r, filePath)
}

// runIDFromPath extracts the run ID from /api/v1/exports/{id}<suffix>.
func runIDFromPath(w http.ResponseWriter, path, suffix string) (string, bool) {
	prefix := "/api/v1/exports/"
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "Export run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}
