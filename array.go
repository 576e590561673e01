package fastplot

// Array is a dense row-major float32 matrix. It is the single data
// representation used throughout fastplot: point positions are (N, D)
// arrays with D of 2 or 3, image grids are (height, width) arrays, and
// resolved colors are (N, 4) arrays.
//
// All ingestion paths convert to float32 immediately, so downstream
// code always sees float32 data.
type Array struct {
	Data []float32
	Rows int
	Cols int
}

// NewArray creates an array of the given shape. If data is nil a zeroed
// backing slice is allocated; otherwise data is used directly (it must
// hold rows*cols values).
func NewArray(rows, cols int, data []float32) *Array {
	if data == nil {
		data = make([]float32, rows*cols)
	}
	return &Array{Data: data, Rows: rows, Cols: cols}
}

// Vector wraps a 1-D slice as a single-row array: a point of dimension
// len(v). This is the promotion applied when a graphic receives 1-D
// position input.
func Vector(v []float32) *Array {
	return &Array{Data: v, Rows: 1, Cols: len(v)}
}

// ArrayFromRows copies a slice of equal-length rows into a new array.
// An empty input yields a (0, 0) array.
func ArrayFromRows(rows [][]float32) *Array {
	if len(rows) == 0 {
		return &Array{}
	}
	cols := len(rows[0])
	a := NewArray(len(rows), cols, nil)
	for i, r := range rows {
		copy(a.Data[i*cols:(i+1)*cols], r)
	}
	return a
}

// ArrayFrom64 converts float64 rows to a float32 array.
func ArrayFrom64(rows [][]float64) *Array {
	if len(rows) == 0 {
		return &Array{}
	}
	cols := len(rows[0])
	a := NewArray(len(rows), cols, nil)
	for i, r := range rows {
		for j, v := range r {
			a.Data[i*cols+j] = float32(v)
		}
	}
	return a
}

// Row returns row i as a subslice of the backing data. The caller must
// not resize it; writes are visible to the array.
func (a *Array) Row(i int) []float32 {
	return a.Data[i*a.Cols : (i+1)*a.Cols]
}

// At returns the element at row i, column j.
func (a *Array) At(i, j int) float32 {
	return a.Data[i*a.Cols+j]
}

// Len returns the total element count.
func (a *Array) Len() int { return a.Rows * a.Cols }

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	d := make([]float32, len(a.Data))
	copy(d, a.Data)
	return &Array{Data: d, Rows: a.Rows, Cols: a.Cols}
}

// CopyInto copies src's elements into a's backing data without
// reallocating. Shapes must hold the same element count.
func (a *Array) CopyInto(src *Array) {
	copy(a.Data, src.Data)
}
