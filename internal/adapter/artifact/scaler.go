package artifact

import "fmt"

// Scaler standardizes numeric features as (x - mean) / scale.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Width is the number of features the scaler was fitted on.
func (s *Scaler) Width() int {
	return len(s.Mean)
}

func (s *Scaler) validate() error {
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("%w: scaler has %d means and %d scales", ErrInvalidArtifact, len(s.Mean), len(s.Scale))
	}
	return nil
}

// Transform scales values in place. A zero scale leaves the centred value unscaled.
func (s *Scaler) Transform(values []float64) error {
	if len(values) != len(s.Mean) {
		return fmt.Errorf("%w: scaler expects %d values, got %d", ErrInvalidArtifact, len(s.Mean), len(values))
	}
	for i, v := range values {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		values[i] = (v - s.Mean[i]) / scale
	}
	return nil
}
