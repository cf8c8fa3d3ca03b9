package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"go-mvmapper/internal/api"
	"go-mvmapper/internal/api/handler"
	"go-mvmapper/internal/export"
	"go-mvmapper/internal/model"
	"go-mvmapper/internal/store"
	"go-mvmapper/pkg/router"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "mvmapper",
	Short: "Export multivariate analysis results for the mvmapper visualization tool",
	Long: `mvmapper merges ordination, discriminant or spatial principal component
analysis results with per-entity geographic metadata and writes the merged
table as CSV for the mvmapper map-based visualization tool.`,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run a single export",
	RunE: func(cmd *cobra.Command, args []string) error {
		analysisFile, _ := cmd.Flags().GetString("analysis")
		metadataFile, _ := cmd.Flags().GetString("metadata")
		outFile, _ := cmd.Flags().GetString("out")
		noWrite, _ := cmd.Flags().GetBool("no-write")

		if err := store.InitDB(dbPath); err != nil {
			return fmt.Errorf("failed to open run history database: %w", err)
		}

		req := model.ExportRequest{
			Analysis: analysisFile,
			Metadata: metadataFile,
			OutFile:  outFile,
			NoWrite:  noWrite,
		}
		runID := uuid.New().String()
		if err := store.SaveExport(runID, req); err != nil {
			return fmt.Errorf("failed to record export run: %w", err)
		}

		return export.Run(context.Background(), runID, req, nil)
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past export runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.InitDB(dbPath); err != nil {
			return fmt.Errorf("failed to open run history database: %w", err)
		}

		runs, err := store.ListExports()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No export runs recorded yet.")
			return nil
		}
		for _, run := range runs {
			line := fmt.Sprintf("%s  %-9s  %s", run.ID, run.Status, run.CreatedAt)
			if run.OutputPath != "" {
				line += fmt.Sprintf("  %d rows → %s", run.RowCount, run.OutputPath)
			}
			fmt.Println(line)
		}
		return nil
	},
}

// serveCmd starts the export API server.
//
// @title mvmapper export API
// @version 1.0
// @description Export multivariate analysis results merged with entity metadata for mvmapper.
// @host localhost:8080
// @BasePath /api/v1
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the export API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		outputDir, _ := cmd.Flags().GetString("output-dir")

		if err := store.InitDB(dbPath); err != nil {
			return fmt.Errorf("failed to open run history database: %w", err)
		}
		if err := handler.SetOutputDir(outputDir); err != nil {
			return fmt.Errorf("failed to prepare output directory: %w", err)
		}

		r := router.New()
		api.RegisterRoutes(r)
		return r.Start(addr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "mvmapper.db", "path of the run history database")

	exportCmd.Flags().String("analysis", "", "path to a JSON-serialized analysis result (required)")
	exportCmd.Flags().String("metadata", "", "path or URL of the metadata CSV (required)")
	exportCmd.Flags().String("out", "", "output CSV path (default: synthesized mvmapper_data_<timestamp>.csv)")
	exportCmd.Flags().Bool("no-write", false, "compute and record the table without writing a file")
	exportCmd.MarkFlagRequired("analysis")
	exportCmd.MarkFlagRequired("metadata")

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("output-dir", "outputs", "directory holding per-run output files")

	rootCmd.AddCommand(exportCmd, runsCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
