package test

import (
	"context"

	"github.com/polkiloo/creditscore/internal/adapter/artifact"
)

// ClassifierStub returns a fixed code and remembers the last row it saw.
type ClassifierStub struct {
	Code    int
	Err     error
	LastRow []float64
}

// Predict records the row and returns configured result.
func (c *ClassifierStub) Predict(row []float64) (int, error) {
	c.LastRow = append([]float64(nil), row...)
	if c.Err != nil {
		return 0, c.Err
	}
	return c.Code, nil
}

// ArtifactLoaderStub returns a configured bundle and counts loads.
type ArtifactLoaderStub struct {
	Bundle *artifact.Bundle
	Err    error
	Calls  int
}

// Load returns the configured bundle or error.
func (s *ArtifactLoaderStub) Load(ctx context.Context) (*artifact.Bundle, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Bundle, nil
}

// NewBundle builds an identity-scaled bundle around the given classifier.
func NewBundle(numeric, categorical []string, classifier artifact.Classifier) *artifact.Bundle {
	mean := make([]float64, len(numeric))
	scale := make([]float64, len(numeric))
	for i := range scale {
		scale[i] = 1
	}
	return &artifact.Bundle{
		Scaler:      &artifact.Scaler{Mean: mean, Scale: scale},
		Numerical:   numeric,
		Categorical: categorical,
		Classifier:  classifier,
	}
}
