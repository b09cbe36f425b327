package lec

import (
	"math"
)

// Profile is a binned view of the LEC result against elevation,
// shaped for external plotting collaborators: bin edges plus, per bin,
// the node count and the mean LEC value of the land nodes inside it.
type Profile struct {
	// Edges holds bins+1 ascending elevation bin boundaries.
	Edges []float64
	// Count holds the number of land nodes per bin.
	Count []int
	// MeanLEC holds the mean finite LEC per bin; NaN for empty bins.
	MeanLEC []float64
}

// ElevationProfile bins the non-marine elevation range into the given
// number of equal-width bins and aggregates node counts and mean LEC
// per bin. NaN LEC slots (failed tasks) are excluded from the means but
// still counted as nodes.
// Fails with ErrNotComputed before Compute, ErrBadBins for bins < 1.
// Complexity: O(nx×ny + bins).
func (s *Session) ElevationProfile(bins int) (Profile, error) {
	if !s.computed {
		return Profile{}, ErrNotComputed
	}
	if bins < 1 {
		return Profile{}, ErrBadBins
	}

	min, max, err := s.g.ElevationRange()
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		Edges:   make([]float64, bins+1),
		Count:   make([]int, bins),
		MeanLEC: make([]float64, bins),
	}
	width := (max - min) / float64(bins)
	for i := range p.Edges {
		p.Edges[i] = min + float64(i)*width
	}
	p.Edges[bins] = max // guard against rounding drift

	sums := make([]float64, bins)
	finite := make([]int, bins)
	for idx, n := 0, s.g.Len(); idx < n; idx++ {
		if s.g.Marine(idx) {
			continue
		}
		b := binOf(s.g.Z(idx), min, width, bins)
		p.Count[b]++
		if v := s.lec[idx]; !math.IsNaN(v) {
			sums[b] += v
			finite[b]++
		}
	}
	for b := 0; b < bins; b++ {
		if finite[b] == 0 {
			p.MeanLEC[b] = math.NaN()

			continue
		}
		p.MeanLEC[b] = sums[b] / float64(finite[b])
	}

	return p, nil
}

// binOf maps an elevation to its bin, clamping the maximum into the
// last bin. A degenerate zero-width range maps everything to bin 0.
func binOf(z, min, width float64, bins int) int {
	if width <= 0 {
		return 0
	}
	b := int((z - min) / width)
	if b < 0 {
		b = 0
	}
	if b >= bins {
		b = bins - 1
	}

	return b
}
