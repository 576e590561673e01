package fastplot

import (
	"fmt"

	"github.com/gogpu/fastplot/scene"
)

// ScatterGraphic draws a point cloud, partitioned by resolved color.
//
// The point material supports one solid color per draw object, so
// per-point coloring is achieved by grouping datapoints that share an
// identical resolved color and giving each color group its own Points
// object. The number of groups is fixed at construction.
type ScatterGraphic struct {
	GraphicBase

	root   *scene.Group
	points []*scene.Points
}

// NewScatter builds a scatter graphic from (N, D) positions, D of 2 or
// 3. A single 1-D point can be wrapped with Vector. Colors default to
// opaque white; WithColors and WithCmap select per-point coloring,
// which determines the grouping. WithSize sets the uniform point size
// per object (default 1).
func NewScatter(positions *Array, opts ...GraphicOption) (*ScatterGraphic, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.sizeSet {
		cfg.size = 1
	}

	base, err := newGraphicBase(positions, &cfg)
	if err != nil {
		return nil, err
	}
	if base.colors == nil {
		// Grouping is defined over resolved colors.
		return nil, fmt.Errorf("%w: scatter requires resolved colors", ErrConfig)
	}

	g := &ScatterGraphic{GraphicBase: base}
	g.root = scene.NewGroup("scatter")

	// Partition rows by distinct color, first-seen order.
	type colorKey [4]float32
	groups := make(map[colorKey][]int)
	var order []colorKey
	for i := 0; i < base.colors.Rows; i++ {
		row := base.colors.Row(i)
		key := colorKey{row[0], row[1], row[2], row[3]}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	dim := positions.Cols
	for gi, key := range order {
		rows := groups[key]
		verts := make([]float32, 0, len(rows)*dim)
		for _, r := range rows {
			verts = append(verts, positions.Row(r)...)
		}
		p := scene.NewPoints(
			fmt.Sprintf("scatter.points[%d]", gi),
			scene.NewGeometry(scene.NewBuffer(verts, dim)),
			&scene.PointsMaterial{Size: cfg.size, Color: key},
		)
		g.root.Add(p)
		g.points = append(g.points, p)
	}

	Logger().Debug("scatter graphic created",
		"points", positions.Rows, "groups", len(g.points))
	return g, nil
}

// Root returns the group holding one Points object per color group.
func (g *ScatterGraphic) Root() scene.Node { return g.root }

// GroupCount returns the number of color-group objects.
func (g *ScatterGraphic) GroupCount() int { return len(g.points) }

// Group returns the i-th color-group object, in first-seen color order.
func (g *ScatterGraphic) Group(i int) *scene.Points { return g.points[i] }

// UpdateData replaces positions for the first color group only and
// marks only the updated range dirty.
//
// Known limitation: multi-color scatter graphics do not support
// full-data update. Only the first group's buffer is touched; the
// remaining groups keep their construction-time positions. Rebuild the
// graphic to redistribute data across colors.
func (g *ScatterGraphic) UpdateData(data *Array) error {
	buf := g.points[0].Geometry.Positions
	copy(buf.Data(), data.Data)
	rows := min(data.Rows, buf.Len())
	buf.MarkRange(0, rows)
	return nil
}
