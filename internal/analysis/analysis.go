// Package analysis defines the supported multivariate analysis result
// variants and their JSON representation.
package analysis

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind names for the supported variants, used as the "type" discriminator
// in serialized results.
const (
	KindOrdination   = "dudi"
	KindDiscriminant = "dapc"
	KindSpatial      = "spca"
)

// Result is implemented by the supported analysis result variants. The set
// is closed: exporting anything else fails with an unsupported-type error.
type Result interface {
	// Kind returns the variant discriminator.
	Kind() string
}

// Ordination is a principal-component style ordination result: one row of
// component scores per entity, one column per retained component.
type Ordination struct {
	Keys   []string    `json:"keys"`
	Scores [][]float64 `json:"scores"`
}

// Kind implements Result.
func (o *Ordination) Kind() string { return KindOrdination }

// Discriminant is a discriminant analysis result. In addition to component
// scores it carries the prior group label, the predicted group label and the
// posterior probability distribution over groups for each entity.
type Discriminant struct {
	Keys      []string    `json:"keys"`
	Scores    [][]float64 `json:"scores"`
	Groups    []string    `json:"grp"`
	Assigned  []string    `json:"assigned_grp"`
	Posterior [][]float64 `json:"posterior"`
}

// Kind implements Result.
func (d *Discriminant) Kind() string { return KindDiscriminant }

// SpatialComponent is a spatial principal component result: component scores
// plus a parallel lag-score matrix of neighbourhood-averaged scores.
type SpatialComponent struct {
	Keys      []string    `json:"keys"`
	Scores    [][]float64 `json:"scores"`
	LagScores [][]float64 `json:"lag_scores"`
}

// Kind implements Result.
func (s *SpatialComponent) Kind() string { return KindSpatial }

// Decode reads a JSON-serialized analysis result. The document must carry a
// "type" field naming one of the supported variants.
func Decode(r io.Reader) (Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis result: %w", err)
	}

	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}

	var res Result
	switch envelope.Type {
	case KindOrdination:
		res = &Ordination{}
	case KindDiscriminant:
		res = &Discriminant{}
	case KindSpatial:
		res = &SpatialComponent{}
	default:
		return nil, fmt.Errorf("unknown analysis type: %q", envelope.Type)
	}

	if err := json.Unmarshal(raw, res); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", envelope.Type, err)
	}
	return res, nil
}
