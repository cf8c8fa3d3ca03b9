package export

import (
	"fmt"

	"go-mvmapper/internal/analysis"
	"go-mvmapper/internal/table"
)

// extractOrdination produces key, PC1..PCk from an ordination result, one
// row per entity in the result's native order.
func extractOrdination(o *analysis.Ordination) (*table.Table, error) {
	scores, err := checkScores(o.Keys, o.Scores)
	if err != nil {
		return nil, err
	}

	t := table.New(scoreColumns("PC", width(scores))...)
	for i, key := range o.Keys {
		row := []interface{}{key}
		for _, v := range scores[i] {
			row = append(row, v)
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// extractDiscriminant produces key, PC1..PCk, grp, assigned_grp, support.
// support is the maximum of the entity's posterior-probability row, computed
// here rather than read from any stored summary.
func extractDiscriminant(d *analysis.Discriminant) (*table.Table, error) {
	scores, err := checkScores(d.Keys, d.Scores)
	if err != nil {
		return nil, err
	}
	if len(d.Groups) == 0 {
		return nil, &MalformedResultError{Field: "grp"}
	}
	if len(d.Groups) != len(d.Keys) {
		return nil, &MalformedResultError{Field: "grp", Reason: shapeMismatch(len(d.Groups), len(d.Keys))}
	}
	if len(d.Assigned) == 0 {
		return nil, &MalformedResultError{Field: "assigned_grp"}
	}
	if len(d.Assigned) != len(d.Keys) {
		return nil, &MalformedResultError{Field: "assigned_grp", Reason: shapeMismatch(len(d.Assigned), len(d.Keys))}
	}
	if len(d.Posterior) == 0 {
		return nil, &MalformedResultError{Field: "posterior"}
	}
	if len(d.Posterior) != len(d.Keys) {
		return nil, &MalformedResultError{Field: "posterior", Reason: shapeMismatch(len(d.Posterior), len(d.Keys))}
	}

	cols := append(scoreColumns("PC", width(scores)), "grp", "assigned_grp", "support")
	t := table.New(cols...)
	for i, key := range d.Keys {
		if len(d.Posterior[i]) == 0 {
			return nil, &MalformedResultError{Field: "posterior", Reason: fmt.Sprintf("has an empty row at index %d", i)}
		}
		support := d.Posterior[i][0]
		for _, p := range d.Posterior[i][1:] {
			if p > support {
				support = p
			}
		}

		row := []interface{}{key}
		for _, v := range scores[i] {
			row = append(row, v)
		}
		row = append(row, d.Groups[i], d.Assigned[i], support)
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// extractSpatial produces key, PC1..PCk, Lag_PC1..Lag_PCk. The lag column
// count is derived from the lag matrix itself, not asserted equal to the
// score matrix width; a row-count mismatch is rejected because it would
// silently misalign entities.
func extractSpatial(s *analysis.SpatialComponent) (*table.Table, error) {
	scores, err := checkScores(s.Keys, s.Scores)
	if err != nil {
		return nil, err
	}
	if len(s.LagScores) == 0 {
		return nil, &MalformedResultError{Field: "lag_scores"}
	}
	if len(s.LagScores) != len(s.Keys) {
		return nil, &MalformedResultError{Field: "lag_scores", Reason: shapeMismatch(len(s.LagScores), len(s.Keys))}
	}
	lagWidth := len(s.LagScores[0])
	for i, row := range s.LagScores {
		if len(row) != lagWidth {
			return nil, &MalformedResultError{Field: "lag_scores", Reason: raggedRow(i, len(row), lagWidth)}
		}
	}

	cols := append(scoreColumns("PC", width(scores)), scoreColumns("Lag_PC", lagWidth)[1:]...)
	t := table.New(cols...)
	for i, key := range s.Keys {
		row := []interface{}{key}
		for _, v := range scores[i] {
			row = append(row, v)
		}
		for _, v := range s.LagScores[i] {
			row = append(row, v)
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// checkScores validates the common keys/scores pair shared by all variants
// and returns the score matrix.
func checkScores(keys []string, scores [][]float64) ([][]float64, error) {
	if len(keys) == 0 {
		return nil, &MalformedResultError{Field: "keys"}
	}
	if len(scores) == 0 {
		return nil, &MalformedResultError{Field: "scores"}
	}
	if len(scores) != len(keys) {
		return nil, &MalformedResultError{Field: "scores", Reason: shapeMismatch(len(scores), len(keys))}
	}
	w := len(scores[0])
	for i, row := range scores {
		if len(row) != w {
			return nil, &MalformedResultError{Field: "scores", Reason: raggedRow(i, len(row), w)}
		}
	}
	return scores, nil
}

// scoreColumns builds key, <prefix>1..<prefix>k with 1-based contiguous
// indices.
func scoreColumns(prefix string, k int) []string {
	cols := []string{"key"}
	for i := 1; i <= k; i++ {
		cols = append(cols, fmt.Sprintf("%s%d", prefix, i))
	}
	return cols
}

func width(scores [][]float64) int {
	if len(scores) == 0 {
		return 0
	}
	return len(scores[0])
}

func shapeMismatch(got, want int) string {
	return fmt.Sprintf("has %d rows, expected %d", got, want)
}

func raggedRow(i, got, want int) string {
	return fmt.Sprintf("has %d values at row %d, expected %d", got, i, want)
}
