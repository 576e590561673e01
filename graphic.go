package fastplot

import "github.com/gogpu/fastplot/scene"

// Graphic is the contract every graphic kind satisfies. A graphic owns
// its raw data, its resolved colors, and exactly one scene root object
// whose identity is preserved across data updates.
type Graphic interface {
	// Data returns the raw float32 data the graphic was built from.
	Data() *Array

	// Colors returns the resolved (N, 4) RGBA colors, or nil when
	// resolution was suppressed with NoColors. Colors are immutable
	// after construction.
	Colors() *Array

	// Root returns the scene object registered with the renderer: a
	// single primitive or a group of them.
	Root() scene.Node

	// UpdateData overwrites the graphic's buffers in place with new
	// data and marks the affected ranges dirty. The scene root and its
	// sub-objects are never reallocated. Kinds without an in-place
	// update path (histogram) accept the call as a no-op.
	UpdateData(data *Array) error
}

// GraphicBase carries the construction state shared by all graphic
// kinds: the float32 raw data and the colors resolved from the
// configured ColorSpec.
type GraphicBase struct {
	data   *Array
	colors *Array
}

// newGraphicBase runs the common construction path: it takes ownership
// of the (already float32) data and resolves colors unless the config
// suppresses them. The color count defaults to the data row count; a
// config override is used when the drawable count differs from the
// sample count (histogram bins).
func newGraphicBase(data *Array, cfg *graphicConfig) (GraphicBase, error) {
	g := GraphicBase{data: data}

	count := data.Rows
	if cfg.colorCount > 0 {
		count = cfg.colorCount
	}

	if _, suppressed := cfg.colors.(noColors); suppressed {
		return g, nil
	}
	colors, err := ResolveColors(cfg.colors, count, cfg.cmap, cfg.alpha)
	if err != nil {
		return GraphicBase{}, err
	}
	g.colors = colors
	return g, nil
}

// Data returns the raw float32 data.
func (g *GraphicBase) Data() *Array { return g.data }

// Colors returns the resolved colors, nil when suppressed.
func (g *GraphicBase) Colors() *Array { return g.colors }

// UpdateData is the default update behavior: an observably inert
// no-op, valid to call. Kinds with an in-place update path override it.
func (g *GraphicBase) UpdateData(data *Array) error { return nil }
