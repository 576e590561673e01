package scene

// Geometry bundles the vertex data of one scene object. Point and line
// objects use Positions (and optionally Colors); image objects use
// Grid; mesh objects use Positions.
type Geometry struct {
	// Positions holds one vertex per datapoint, stride 2 or 3.
	Positions *Buffer

	// Colors holds one RGBA row per vertex (stride 4), or nil when the
	// material supplies a solid color.
	Colors *Buffer

	// Grid is the texture grid for image geometries, nil otherwise.
	Grid *Texture
}

// NewGeometry creates a geometry around a position buffer.
func NewGeometry(positions *Buffer) *Geometry {
	return &Geometry{Positions: positions}
}

// NewGridGeometry creates a geometry around a texture grid.
func NewGridGeometry(grid *Texture) *Geometry {
	return &Geometry{Grid: grid}
}

// PlaneGeometry builds a unit quad of the given width and height,
// centered on the origin, as two triangles in the z=0 plane. Histogram
// bins are drawn with these.
func PlaneGeometry(width, height float32) *Geometry {
	hw, hh := width/2, height/2
	verts := []float32{
		-hw, -hh, 0,
		hw, -hh, 0,
		hw, hh, 0,
		-hw, -hh, 0,
		hw, hh, 0,
		-hw, hh, 0,
	}
	return NewGeometry(NewBuffer(verts, 3))
}
