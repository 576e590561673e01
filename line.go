package fastplot

import (
	"fmt"

	"github.com/gogpu/fastplot/scene"
)

// thinLineThreshold is the size below which lines use the single-pixel
// fast-path material instead of the thickness-aware one.
const thinLineThreshold = 1.1

// LineGraphic draws a vertex-colored line strip through (N, D)
// positions. One scene object, one geometry; the position and color
// buffers alias the graphic's arrays.
type LineGraphic struct {
	GraphicBase

	root *scene.Line
}

// NewLine builds a line graphic. WithSize selects the material: sizes
// below 1.1 use the thin fast path, anything else the thickness-aware
// material (default size 2). Per-vertex colors come from the resolved
// colors; suppressing them with NoColors is a configuration error.
func NewLine(data *Array, opts ...GraphicOption) (*LineGraphic, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.sizeSet {
		cfg.size = 2.0
	}

	base, err := newGraphicBase(data, &cfg)
	if err != nil {
		return nil, err
	}
	if base.colors == nil {
		return nil, fmt.Errorf("%w: line requires vertex colors", ErrConfig)
	}

	var material scene.Material
	if cfg.size < thinLineThreshold {
		material = &scene.LineThinMaterial{}
	} else {
		material = &scene.LineMaterial{Thickness: cfg.size}
	}

	g := &LineGraphic{GraphicBase: base}
	geom := scene.NewGeometry(scene.NewBuffer(g.data.Data, data.Cols))
	geom.Colors = scene.NewBuffer(g.colors.Data, 4)
	g.root = scene.NewLine("line", geom, material)

	Logger().Debug("line graphic created",
		"points", data.Rows, "thick", cfg.size >= thinLineThreshold)
	return g, nil
}

// Root returns the line scene object.
func (g *LineGraphic) Root() scene.Node { return g.root }

// UpdateData replaces the entire position buffer in place and marks
// the whole range dirty; there is no partial-range optimization. The
// new data must hold the same element count as the original.
func (g *LineGraphic) UpdateData(data *Array) error {
	g.root.Geometry.Positions.SetData(data.Data)
	return nil
}
