// Package export turns a supported analysis result plus per-entity
// geographic metadata into the flat table mvmapper consumes: it dispatches
// on the analysis variant, extracts component scores and group fields,
// validates the metadata, inner-joins the two on key and optionally writes
// the merged table as CSV.
package export

import (
	"fmt"
	"io"
	"os"

	"go-mvmapper/internal/analysis"
	"go-mvmapper/internal/table"
)

// Exporter runs export calls. It holds no per-call state; concurrent calls
// are safe as long as they target distinct output files.
type Exporter struct {
	out io.Writer
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithDiagnostics redirects informational notices and warnings, which go to
// stdout by default.
func WithDiagnostics(w io.Writer) Option {
	return func(e *Exporter) {
		e.out = w
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{out: os.Stdout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Options controls a single export call.
type Options struct {
	// WriteFile controls whether the merged table is also written as CSV.
	WriteFile bool
	// OutFile is the output path; empty means a synthesized
	// mvmapper_data_<timestamp>.csv name.
	OutFile string
}

// DefaultOptions writes to a synthesized filename.
func DefaultOptions() Options {
	return Options{WriteFile: true}
}

// Export extracts per-entity fields from the analysis result, validates the
// metadata and merges the two on key. The returned table is identical
// whether or not a file is written; the returned path is empty when no file
// was written. An empty merge result is not an error, but callers should
// treat it as a likely upstream problem.
func (e *Exporter) Export(res analysis.Result, metadata *table.Table, opts Options) (*table.Table, string, error) {
	var (
		extracted *table.Table
		err       error
	)
	switch r := res.(type) {
	case *analysis.Ordination:
		extracted, err = extractOrdination(r)
	case *analysis.Discriminant:
		extracted, err = extractDiscriminant(r)
	case *analysis.SpatialComponent:
		extracted, err = extractSpatial(r)
	default:
		return nil, "", &UnsupportedTypeError{TypeName: fmt.Sprintf("%T", res)}
	}
	if err != nil {
		return nil, "", err
	}

	refKeys, _ := extracted.ColumnStrings("key")
	metadata, err = e.ValidateMetadata(metadata, refKeys, nil)
	if err != nil {
		return nil, "", err
	}

	merged, err := extracted.InnerJoin(metadata, "key")
	if err != nil {
		return nil, "", err
	}

	if !opts.WriteFile {
		return merged, "", nil
	}
	path, err := e.write(merged, opts.OutFile)
	if err != nil {
		return nil, "", err
	}
	e.infof("💾 Exported %d rows to %s\n", merged.NumRows(), path)
	return merged, path, nil
}

func (e *Exporter) infof(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}

func (e *Exporter) warnf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}
