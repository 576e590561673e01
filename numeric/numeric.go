// Package numeric provides the array-statistics collaborators used by
// fastplot graphics: fast approximate range estimation for image
// contrast limits, and histogram binning.
package numeric

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/chewxy/math32"
)

// ErrNoSamples is returned when an operation receives no data.
var ErrNoSamples = errors.New("numeric: no samples")

// maxExactSamples is the largest input scanned exhaustively by
// ApproxMinMax; larger inputs are subsampled with a uniform stride.
const maxExactSamples = 1 << 16

// ApproxMinMax estimates the (min, max) of data. Inputs larger than
// 64Ki values are subsampled with a uniform stride, trading exactness
// for speed; the estimate is what image graphics use for automatic
// contrast limits.
func ApproxMinMax(data []float32) (minv, maxv float32) {
	if len(data) == 0 {
		return 0, 0
	}
	stride := len(data)/maxExactSamples + 1
	xs := make([]float64, 0, len(data)/stride+1)
	for i := 0; i < len(data); i += stride {
		xs = append(xs, float64(data[i]))
	}
	lo, hi := (&stats.Sample{Xs: xs}).Bounds()
	return float32(lo), float32(hi)
}

// BinSpec selects the histogram bin count: a fixed positive Count, or
// one of the automatic strategies "auto", "sqrt" (square root of the
// sample count) and "sturges" (1 + log2 of the sample count).
type BinSpec struct {
	Count    int
	Strategy string
}

// FixedBins selects exactly n bins.
func FixedBins(n int) BinSpec { return BinSpec{Count: n} }

// AutoBins selects the "auto" strategy.
func AutoBins() BinSpec { return BinSpec{Strategy: "auto"} }

// resolve turns the spec into a concrete bin count for n samples.
func (s BinSpec) resolve(n int) (int, error) {
	if s.Count > 0 {
		return s.Count, nil
	}
	switch s.Strategy {
	case "", "auto", "sqrt":
		return int(math32.Ceil(math32.Sqrt(float32(n)))), nil
	case "sturges":
		return int(math32.Ceil(math32.Log2(float32(n)))) + 1, nil
	default:
		return 0, fmt.Errorf("numeric: unknown bin strategy %q", s.Strategy)
	}
}

// Bin computes a histogram of samples: per-bin counts and the n+1 bin
// edges spanning [min, max] uniformly. The rightmost edge is
// inclusive, so the maximum sample lands in the last bin.
func Bin(samples []float32, spec BinSpec) (counts []int, edges []float32, err error) {
	if len(samples) == 0 {
		return nil, nil, ErrNoSamples
	}
	nbins, err := spec.resolve(len(samples))
	if err != nil {
		return nil, nil, err
	}
	if nbins < 1 {
		nbins = 1
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples[1:] {
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	if lo == hi {
		// Degenerate range: widen by one unit so edges stay distinct.
		lo -= 0.5
		hi += 0.5
	}

	es := vec.Linspace(float64(lo), float64(hi), nbins+1)
	edges = make([]float32, len(es))
	for i, e := range es {
		edges[i] = float32(e)
	}

	counts = make([]int, nbins)
	width := (hi - lo) / float32(nbins)
	for _, v := range samples {
		i := int((v - lo) / width)
		if i >= nbins {
			i = nbins - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}
	return counts, edges, nil
}
