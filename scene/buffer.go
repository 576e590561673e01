package scene

import "github.com/gogpu/gputypes"

// Buffer is float32 vertex storage with dirty-range tracking.
//
// A Buffer aliases the slice it was created from: the owning graphic
// and the buffer see the same backing data, which is the zero-copy
// contract the renderer boundary requires. In-place mutation goes
// through SetData or MarkRange so the dirty range stays accurate.
//
// The dirty range is expressed in vertex indices [lo, hi), where one
// vertex is Stride consecutive float32 values.
type Buffer struct {
	data    []float32
	stride  int
	dirtyLo int
	dirtyHi int
	dirty   bool
	version uint64
}

// NewBuffer wraps data as a vertex buffer with the given stride
// (components per vertex). The data is aliased, not copied.
func NewBuffer(data []float32, stride int) *Buffer {
	return &Buffer{data: data, stride: stride}
}

// Data returns the backing slice. Writes through it must be followed
// by MarkRange (or MarkAll) to schedule re-upload.
func (b *Buffer) Data() []float32 { return b.data }

// Len returns the vertex count.
func (b *Buffer) Len() int {
	if b.stride == 0 {
		return 0
	}
	return len(b.data) / b.stride
}

// Stride returns the number of float32 components per vertex.
func (b *Buffer) Stride() int { return b.stride }

// VertexFormat returns the WebGPU vertex format matching the stride.
func (b *Buffer) VertexFormat() gputypes.VertexFormat {
	switch b.stride {
	case 1:
		return gputypes.VertexFormatFloat32
	case 2:
		return gputypes.VertexFormatFloat32x2
	case 3:
		return gputypes.VertexFormatFloat32x3
	default:
		return gputypes.VertexFormatFloat32x4
	}
}

// SetData overwrites the buffer contents in place and marks the whole
// range dirty. The length of data must equal the existing length; the
// backing slice is never reallocated, so aliases stay valid.
func (b *Buffer) SetData(data []float32) {
	copy(b.data, data)
	b.MarkAll()
}

// MarkRange extends the dirty range to cover vertices [lo, hi).
func (b *Buffer) MarkRange(lo, hi int) {
	if hi <= lo {
		return
	}
	if !b.dirty {
		b.dirtyLo, b.dirtyHi = lo, hi
	} else {
		b.dirtyLo = min(b.dirtyLo, lo)
		b.dirtyHi = max(b.dirtyHi, hi)
	}
	b.dirty = true
	b.version++
}

// MarkAll marks every vertex dirty.
func (b *Buffer) MarkAll() {
	b.MarkRange(0, b.Len())
}

// DirtyRange reports the pending dirty vertex range, if any.
func (b *Buffer) DirtyRange() (lo, hi int, ok bool) {
	return b.dirtyLo, b.dirtyHi, b.dirty
}

// ClearDirty resets the dirty range. Called by the uploader after a
// successful re-upload.
func (b *Buffer) ClearDirty() {
	b.dirty = false
	b.dirtyLo, b.dirtyHi = 0, 0
}

// Version returns a counter that increments on every mutation. Caches
// keyed on the buffer can use it for invalidation.
func (b *Buffer) Version() uint64 { return b.version }
