package export

import (
	"context"
	"fmt"

	"go-mvmapper/internal/ingest"
	"go-mvmapper/internal/model"
	"go-mvmapper/internal/store"
	"go-mvmapper/pkg/utils"
)

// DefaultRunFileName is the output name used when a managed run does not
// name its output file; the run directory is unique already.
const DefaultRunFileName = "mvmapper_data.csv"

// Run executes a stored export request end to end: load the analysis result
// and metadata, export, and record the outcome. Run owns failure
// bookkeeping: a failed run is marked failed and its error persisted exactly
// once, here. When an output manager is given the output file is placed
// under the run's directory.
func Run(ctx context.Context, runID string, req model.ExportRequest, om *utils.OutputManager) (err error) {
	fmt.Printf("🚀 Starting export run: %s\n", runID)

	if serr := store.UpdateExportStatus(runID, model.StatusRunning); serr != nil {
		fmt.Printf("⚠️ Failed to mark run %s as running: %v\n", runID, serr)
	}
	defer func() {
		if err != nil {
			// Record the error before flipping the status, so a run
			// observed as failed always has its error on file.
			if serr := store.SaveExportError(runID, err); serr != nil {
				fmt.Printf("⚠️ Failed to record error for run %s: %v\n", runID, serr)
			}
			if serr := store.UpdateExportStatus(runID, model.StatusFailed); serr != nil {
				fmt.Printf("⚠️ Failed to mark run %s as failed: %v\n", runID, serr)
			}
		}
	}()

	res, err := ingest.ReadAnalysis(req.Analysis)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	metadata, err := ingest.ReadMetadata(req.Metadata)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	opts := Options{WriteFile: !req.NoWrite, OutFile: req.OutFile}
	if opts.WriteFile && om != nil {
		name := opts.OutFile
		if name == "" {
			name = DefaultRunFileName
		}
		opts.OutFile, err = om.GetOutputFilePath(runID, name)
		if err != nil {
			return err
		}
	}

	tbl, path, err := New().Export(res, metadata, opts)
	if err != nil {
		return err
	}

	if err = store.SetExportResult(runID, tbl.NumRows(), tbl.NumCols(), path); err != nil {
		return err
	}
	fmt.Printf("🏁 Export run %s completed: %d rows, %d columns\n", runID, tbl.NumRows(), tbl.NumCols())
	return nil
}
