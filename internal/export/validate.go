package export

import "go-mvmapper/internal/table"

// RequiredMetadataColumns are the columns every metadata table must carry:
// the entity identifier and its geographic coordinates.
var RequiredMetadataColumns = []string{"key", "lat", "lon"}

// ValidateMetadata checks that metadata carries each required column,
// failing on the first absent one in the given order, and warns when
// entities from refKeys are not covered by the metadata. Missing coverage is
// not an error: the merge step drops the uncovered entities. The metadata is
// returned unchanged.
func (e *Exporter) ValidateMetadata(metadata *table.Table, refKeys []string, required []string) (*table.Table, error) {
	if required == nil {
		required = RequiredMetadataColumns
	}
	for _, col := range required {
		if !metadata.HasColumn(col) {
			return nil, &MissingColumnError{Column: col}
		}
	}

	known := make(map[string]bool)
	if keys, ok := metadata.ColumnStrings("key"); ok {
		for _, k := range keys {
			known[k] = true
		}
	}
	nbMissing := 0
	for _, k := range refKeys {
		if !known[k] {
			nbMissing++
		}
	}
	if nbMissing > 0 {
		e.warnf("⚠️ %d entities from the analysis are missing from the metadata and will be dropped\n", nbMissing)
	}

	return metadata, nil
}
