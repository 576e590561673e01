package fastplot

import (
	"fmt"

	"github.com/gogpu/fastplot/numeric"
	"github.com/gogpu/fastplot/scene"
)

// Keys required of a pre-computed histogram input.
const (
	preComputedHist  = "hist"
	preComputedEdges = "bin_edges"
)

// HistogramGraphic draws binned counts as one flat plane per bin,
// resting on the zero baseline. Bins are positioned along a fixed
// drawing range regardless of the edges' magnitude.
//
// Histograms have no in-place update path: re-binning implies
// reconstruction, so UpdateData is inert.
type HistogramGraphic struct {
	GraphicBase

	root   *scene.Group
	meshes []*scene.Mesh

	hist     []float32
	binEdges []float32
	centers  []float32
	binWidth float32
}

// NewHistogram builds a histogram graphic either by binning raw
// samples (any shape; all elements are used) with the configured
// WithBins strategy, or from a WithPreComputed pair. A pre-computed
// input must carry exactly the keys "hist" and "bin_edges", both
// non-nil arrays, with one more edge than counts; anything else fails
// with a validation error before any scene object is built.
func NewHistogram(data *Array, opts ...GraphicOption) (*HistogramGraphic, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var hist, edges []float32
	if cfg.pre == nil {
		if data == nil {
			return nil, fmt.Errorf("%w: histogram requires samples or a pre-computed pair", ErrValidation)
		}
		counts, es, err := numeric.Bin(data.Data, cfg.bins)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		hist = make([]float32, len(counts))
		for i, c := range counts {
			hist[i] = float32(c)
		}
		edges = es
	} else {
		var err error
		hist, edges, err = validatePreComputed(cfg.pre)
		if err != nil {
			return nil, err
		}
	}

	// Scale edges linearly into [0, drawScale] using the observed min
	// and peak-to-peak span.
	lo, hi := edges[0], edges[0]
	for _, e := range edges[1:] {
		if e < lo {
			lo = e
		}
		if e > hi {
			hi = e
		}
	}
	ptp := hi - lo
	if ptp == 0 {
		return nil, fmt.Errorf("%w: bin edges span an empty range", ErrValidation)
	}
	scaled := make([]float32, len(edges))
	for i, e := range edges {
		scaled[i] = (e - lo) / ptp * cfg.drawScale
	}

	// Bin centers: scaled edge plus half the first interval, for all
	// but the last edge.
	binInterval := scaled[1] / 2
	centers := make([]float32, len(scaled)-1)
	for i := range centers {
		centers[i] = scaled[i] + binInterval
	}

	nBins := len(centers)
	binWidth := cfg.drawScale / float32(nBins) * cfg.binWidthScale

	// A (2, nBins) array of (center, count) pairs feeds the base so
	// the color count equals the bin count, not the sample count. This
	// array is bookkeeping, not the render geometry.
	book := NewArray(2, nBins, nil)
	copy(book.Row(0), centers)
	copy(book.Row(1), hist)

	cfg.colorCount = nBins
	base, err := newGraphicBase(book, &cfg)
	if err != nil {
		return nil, err
	}

	g := &HistogramGraphic{
		GraphicBase: base,
		hist:        hist,
		binEdges:    edges,
		centers:     centers,
		binWidth:    binWidth,
	}
	g.root = scene.NewGroup("histogram")
	for i := range centers {
		color := [4]float32{1, 1, 1, 1}
		if g.colors != nil {
			row := g.colors.Row(i)
			color = [4]float32{row[0], row[1], row[2], row[3]}
		}
		m := scene.NewMesh(
			fmt.Sprintf("histogram.bin[%d]", i),
			scene.PlaneGeometry(binWidth, hist[i]),
			&scene.MeshBasicMaterial{Color: color},
		)
		m.Position = scene.Vec3{X: centers[i], Y: hist[i] / 2, Z: 0}
		g.root.Add(m)
		g.meshes = append(g.meshes, m)
	}

	Logger().Debug("histogram graphic created", "bins", nBins)
	return g, nil
}

// validatePreComputed checks a supplied histogram pair: exactly the
// two required keys, both non-nil arrays, consistent lengths.
func validatePreComputed(pre map[string]*Array) (hist, edges []float32, err error) {
	if len(pre) != 2 {
		return nil, nil, fmt.Errorf("%w: pre-computed input must carry exactly the keys %q and %q",
			ErrValidation, preComputedHist, preComputedEdges)
	}
	h, ok := pre[preComputedHist]
	if !ok {
		return nil, nil, fmt.Errorf("%w: pre-computed input is missing key %q", ErrValidation, preComputedHist)
	}
	e, ok := pre[preComputedEdges]
	if !ok {
		return nil, nil, fmt.Errorf("%w: pre-computed input is missing key %q", ErrValidation, preComputedEdges)
	}
	if h == nil || e == nil {
		return nil, nil, fmt.Errorf("%w: pre-computed values must be arrays", ErrValidation)
	}
	if e.Len() < 2 || h.Len() != e.Len()-1 {
		return nil, nil, fmt.Errorf("%w: pre-computed histogram needs len(bin_edges) == len(hist)+1, got %d and %d",
			ErrValidation, e.Len(), h.Len())
	}
	return h.Data, e.Data, nil
}

// Root returns the group holding one mesh per bin.
func (g *HistogramGraphic) Root() scene.Node { return g.root }

// Hist returns the per-bin counts as float32.
func (g *HistogramGraphic) Hist() []float32 { return g.hist }

// BinEdges returns the unscaled bin edges.
func (g *HistogramGraphic) BinEdges() []float32 { return g.binEdges }

// Centers returns the scaled per-bin x-centers, strictly increasing.
func (g *HistogramGraphic) Centers() []float32 { return g.centers }

// BinWidth returns the drawn width of each bin.
func (g *HistogramGraphic) BinWidth() float32 { return g.binWidth }

// BinCount returns the number of bins (and scene sub-objects).
func (g *HistogramGraphic) BinCount() int { return len(g.meshes) }

// Bin returns the i-th bin mesh.
func (g *HistogramGraphic) Bin(i int) *scene.Mesh { return g.meshes[i] }
