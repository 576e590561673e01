package fastplot

import "testing"

var (
	_ Graphic = (*ImageGraphic)(nil)
	_ Graphic = (*ScatterGraphic)(nil)
	_ Graphic = (*LineGraphic)(nil)
	_ Graphic = (*HistogramGraphic)(nil)
)

func TestGraphicBaseAccessors(t *testing.T) {
	data := ArrayFromRows([][]float32{{0, 0}, {1, 1}})
	sc, err := NewScatter(data)
	if err != nil {
		t.Fatalf("NewScatter() error = %v", err)
	}
	if sc.Data() != data {
		t.Error("Data() does not return the construction array")
	}
	colors := sc.Colors()
	if colors == nil || colors.Rows != 2 || colors.Cols != 4 {
		t.Fatalf("Colors() shape = %+v, want (2, 4)", colors)
	}
}

func TestGraphicBaseUpdateDataInert(t *testing.T) {
	base := GraphicBase{}
	if err := base.UpdateData(Vector([]float32{1, 2, 3})); err != nil {
		t.Fatalf("UpdateData() error = %v, want nil", err)
	}
}
