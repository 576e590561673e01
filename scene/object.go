package scene

// Vec3 is a position in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Node is anything that can live in a scene graph: a drawable object
// or a group of them. This is a sealed interface - only types in this
// package implement it.
type Node interface {
	// Name returns the debug label of the node.
	Name() string

	isNode()
}

// Group is an ordered container of child nodes. A graphic whose
// renderer requires several draw objects (scatter color groups,
// histogram bins) uses a Group as its root.
type Group struct {
	name     string
	children []Node
}

// NewGroup creates an empty group with a debug label.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) isNode() {}

// Name returns the debug label of the group.
func (g *Group) Name() string { return g.name }

// Add appends a child node.
func (g *Group) Add(n Node) {
	g.children = append(g.children, n)
}

// Children returns the child nodes in insertion order. The returned
// slice is the group's own; callers must not modify it.
func (g *Group) Children() []Node { return g.children }

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// Points is a point-cloud draw object: one vertex per datapoint, one
// solid color for the whole object.
type Points struct {
	name     string
	Geometry *Geometry
	Material *PointsMaterial
	Position Vec3
}

// NewPoints creates a point-cloud object.
func NewPoints(name string, g *Geometry, m *PointsMaterial) *Points {
	return &Points{name: name, Geometry: g, Material: m}
}

func (p *Points) isNode() {}

// Name returns the debug label of the object.
func (p *Points) Name() string { return p.name }

// Line is a vertex-colored line-strip draw object. Material is either
// *LineThinMaterial or *LineMaterial.
type Line struct {
	name     string
	Geometry *Geometry
	Material Material
	Position Vec3
}

// NewLine creates a line object.
func NewLine(name string, g *Geometry, m Material) *Line {
	return &Line{name: name, Geometry: g, Material: m}
}

func (l *Line) isNode() {}

// Name returns the debug label of the object.
func (l *Line) Name() string { return l.name }

// Mesh is a solid-colored triangle-mesh draw object.
type Mesh struct {
	name     string
	Geometry *Geometry
	Material *MeshBasicMaterial
	Position Vec3
}

// NewMesh creates a mesh object.
func NewMesh(name string, g *Geometry, m *MeshBasicMaterial) *Mesh {
	return &Mesh{name: name, Geometry: g, Material: m}
}

func (m *Mesh) isNode() {}

// Name returns the debug label of the object.
func (m *Mesh) Name() string { return m.name }

// Image is a textured-quad draw object sampling a 2-D intensity grid
// through a colormap.
type Image struct {
	name     string
	Geometry *Geometry
	Material *ImageMaterial
	Position Vec3
}

// NewImage creates an image object.
func NewImage(name string, g *Geometry, m *ImageMaterial) *Image {
	return &Image{name: name, Geometry: g, Material: m}
}

func (i *Image) isNode() {}

// Name returns the debug label of the object.
func (i *Image) Name() string { return i.name }
