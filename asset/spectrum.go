package asset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/achilleasa/vega/types"
)

// Spectrum is a sampleable colour gradient indexed by a scalar in [0, 1].
// Knots are strictly increasing with the first pinned to 0 and the last to 1.
type Spectrum struct {
	knots   []float64
	colours []types.LinRGBA
}

// Create a new spectrum with evenly spaced knots.
func NewSpectrum(colours []types.LinRGBA) (*Spectrum, error) {
	if len(colours) == 0 {
		return nil, errors.New("spectrum colour list must not be empty")
	}

	// A single colour still forms a valid, constant gradient.
	if len(colours) == 1 {
		colours = []types.LinRGBA{colours[0], colours[0]}
	}

	knots := make([]float64, len(colours))
	for i := range knots {
		knots[i] = float64(i) / float64(len(knots)-1)
	}

	return &Spectrum{knots: knots, colours: colours}, nil
}

// Sample the colour at t. The parameter must be in [0, 1]; anything else is a
// programmer error upstream validation should have caught.
func (s *Spectrum) Sample(t float64) types.LinRGBA {
	if t < 0.0 || t > 1.0 {
		panic(fmt.Sprintf("spectrum: sample parameter %g outside [0, 1]", t))
	}

	// First knot at or above t.
	i := sort.SearchFloat64s(s.knots, t)
	if i == 0 {
		return s.colours[0]
	}

	span := s.knots[i] - s.knots[i-1]
	frac := (t - s.knots[i-1]) / span
	return s.colours[i-1].Lerp(s.colours[i], frac)
}
