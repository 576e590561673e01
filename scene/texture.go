package scene

import "github.com/gogpu/gputypes"

// Region is a rectangular sub-area of a texture, in texels.
type Region struct {
	X, Y int
	W, H int
}

// Texture is a 2-D float32 intensity grid with dirty-region tracking.
// It backs image graphics: the grid aliases the graphic's data array,
// and updates mark the changed region for re-upload.
type Texture struct {
	data     []float32
	rows     int
	cols     int
	dirty    Region
	hasDirty bool
	version  uint64
}

// NewTexture wraps data as a rows x cols texture grid. The data is
// aliased, not copied.
func NewTexture(data []float32, rows, cols int) *Texture {
	return &Texture{data: data, rows: rows, cols: cols}
}

// Data returns the backing grid.
func (t *Texture) Data() []float32 { return t.data }

// Rows returns the texture height in texels.
func (t *Texture) Rows() int { return t.rows }

// Cols returns the texture width in texels.
func (t *Texture) Cols() int { return t.cols }

// SetData overwrites the grid in place and marks the entire texture
// dirty. len(data) must equal rows*cols; the backing slice is never
// reallocated.
func (t *Texture) SetData(data []float32) {
	copy(t.data, data)
	t.MarkAllDirty()
}

// MarkDirty extends the dirty region to cover r.
func (t *Texture) MarkDirty(r Region) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if !t.hasDirty {
		t.dirty = r
	} else {
		x0 := min(t.dirty.X, r.X)
		y0 := min(t.dirty.Y, r.Y)
		x1 := max(t.dirty.X+t.dirty.W, r.X+r.W)
		y1 := max(t.dirty.Y+t.dirty.H, r.Y+r.H)
		t.dirty = Region{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	}
	t.hasDirty = true
	t.version++
}

// MarkAllDirty marks the whole texture for re-upload.
func (t *Texture) MarkAllDirty() {
	t.MarkDirty(Region{X: 0, Y: 0, W: t.cols, H: t.rows})
}

// DirtyRegion reports the pending dirty region, if any.
func (t *Texture) DirtyRegion() (Region, bool) {
	return t.dirty, t.hasDirty
}

// ClearDirty resets the dirty region after a successful upload.
func (t *Texture) ClearDirty() {
	t.hasDirty = false
	t.dirty = Region{}
}

// Version returns a counter that increments on every mutation.
func (t *Texture) Version() uint64 { return t.version }

// LUTTexture is a 1-D RGBA8 lookup texture, used by ImageMaterial to
// map scalar intensities to colors. Produced by cmap.Texture.
type LUTTexture struct {
	// Name is the colormap name the table was sampled from.
	Name string

	// Pix holds N RGBA8 texels, 4 bytes each.
	Pix []byte
}

// Len returns the number of texels in the table.
func (t *LUTTexture) Len() int { return len(t.Pix) / 4 }

// Format returns the texel format of the table.
func (t *LUTTexture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// At returns the RGBA8 texel for a normalized position v in [0, 1].
func (t *LUTTexture) At(v float32) (r, g, b, a uint8) {
	n := t.Len()
	if n == 0 {
		return 0, 0, 0, 0
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	i := int(v * float32(n-1))
	return t.Pix[i*4], t.Pix[i*4+1], t.Pix[i*4+2], t.Pix[i*4+3]
}
