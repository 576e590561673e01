package fastplot

import "github.com/gogpu/fastplot/numeric"

// GraphicOption configures a graphic during construction.
// Use functional options to customize per-kind behavior.
//
// Example:
//
//	plt.Scatter(positions,
//	    fastplot.WithCmap("viridis"),
//	    fastplot.WithAlpha(0.7),
//	    fastplot.WithSize(3),
//	)
type GraphicOption func(*graphicConfig)

// graphicConfig holds the union of per-kind construction options.
// Each kind reads the fields it understands.
type graphicConfig struct {
	colors     ColorSpec
	cmap       string
	alpha      float32
	colorCount int

	// scatter / line
	size    float32
	sizeSet bool

	// image
	climMin, climMax float32
	climSet          bool
	filter           string

	// histogram
	bins          numeric.BinSpec
	pre           map[string]*Array
	drawScale     float32
	binWidthScale float32
}

// defaultConfig returns the option defaults shared by all kinds.
func defaultConfig() graphicConfig {
	return graphicConfig{
		alpha:         1.0,
		filter:        "nearest",
		bins:          numeric.AutoBins(),
		drawScale:     100.0,
		binWidthScale: 1.0,
	}
}

// WithColors sets the color specification (see ColorSpec).
func WithColors(spec ColorSpec) GraphicOption {
	return func(c *graphicConfig) { c.colors = spec }
}

// WithCmap sets the colormap name used for color resolution, and for
// image graphics the lookup texture of the material.
func WithCmap(name string) GraphicOption {
	return func(c *graphicConfig) { c.cmap = name }
}

// WithAlpha sets the alpha applied to colormap-derived colors.
// Default 1.0.
func WithAlpha(a float32) GraphicOption {
	return func(c *graphicConfig) { c.alpha = a }
}

// WithColorCount overrides the number of color rows resolved, when the
// drawable count differs from the data row count.
func WithColorCount(n int) GraphicOption {
	return func(c *graphicConfig) { c.colorCount = n }
}

// WithSize sets the point size (scatter) or line thickness (line).
// Line thicknesses below 1.1 select the thin fast-path material.
func WithSize(s float32) GraphicOption {
	return func(c *graphicConfig) { c.size = s; c.sizeSet = true }
}

// WithClim sets both image intensity bounds. Bounds are always set as
// a pair; when unset, both are estimated from the data.
func WithClim(minv, maxv float32) GraphicOption {
	return func(c *graphicConfig) { c.climMin, c.climMax = minv, maxv; c.climSet = true }
}

// WithFilter sets the image sampling filter name. Default "nearest".
func WithFilter(name string) GraphicOption {
	return func(c *graphicConfig) { c.filter = name }
}

// WithBins sets the histogram binning strategy.
func WithBins(spec numeric.BinSpec) GraphicOption {
	return func(c *graphicConfig) { c.bins = spec }
}

// WithPreComputed supplies a pre-computed histogram instead of raw
// samples. The map must carry exactly the keys "hist" and "bin_edges",
// both non-nil arrays.
func WithPreComputed(pre map[string]*Array) GraphicOption {
	return func(c *graphicConfig) { c.pre = pre }
}

// WithDrawScale sets the histogram drawing range [0, scale].
// Default 100.
func WithDrawScale(scale float32) GraphicOption {
	return func(c *graphicConfig) { c.drawScale = scale }
}

// WithBinWidthScale scales the drawn width of histogram bins.
// Default 1.
func WithBinWidthScale(scale float32) GraphicOption {
	return func(c *graphicConfig) { c.binWidthScale = scale }
}
