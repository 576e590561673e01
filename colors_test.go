package fastplot

import (
	"errors"
	"testing"

	"github.com/gogpu/fastplot/cmap"
)

func TestResolveColorsDefaultWhite(t *testing.T) {
	got, err := ResolveColors(nil, 3, "", 1.0)
	if err != nil {
		t.Fatalf("ResolveColors() error = %v", err)
	}
	if got.Rows != 3 || got.Cols != 4 {
		t.Fatalf("shape = (%d, %d), want (3, 4)", got.Rows, got.Cols)
	}
	for i := 0; i < got.Rows; i++ {
		row := got.Row(i)
		for j, v := range row {
			if v != 1 {
				t.Errorf("row %d channel %d = %v, want 1", i, j, v)
			}
		}
	}
}

func TestResolveColorsCmap(t *testing.T) {
	got, err := ResolveColors(nil, 10, "viridis", 0.5)
	if err != nil {
		t.Fatalf("ResolveColors() error = %v", err)
	}
	if got.Rows != 10 || got.Cols != 4 {
		t.Fatalf("shape = (%d, %d), want (10, 4)", got.Rows, got.Cols)
	}
	for i := 0; i < got.Rows; i++ {
		if a := got.At(i, 3); a != 0.5 {
			t.Errorf("row %d alpha = %v, want 0.5", i, a)
		}
	}
	// First and last rows must differ: the map is sampled end to end.
	if got.At(0, 0) == got.At(9, 0) && got.At(0, 1) == got.At(9, 1) && got.At(0, 2) == got.At(9, 2) {
		t.Error("first and last sampled colors are identical")
	}
}

func TestResolveColorsExplicitRoundTrip(t *testing.T) {
	c := ArrayFromRows([][]float32{
		{1, 0, 0, 1},
		{0, 1, 0, 0.5},
	})
	got, err := ResolveColors(RGBA(c), 2, "", 1.0)
	if err != nil {
		t.Fatalf("ResolveColors() error = %v", err)
	}
	for i := range c.Data {
		if got.Data[i] != c.Data[i] {
			t.Fatalf("Data[%d] = %v, want %v", i, got.Data[i], c.Data[i])
		}
	}
	// Pass-through is by value: mutating the result must not touch the input.
	got.Data[0] = 0.25
	if c.Data[0] != 1 {
		t.Error("resolved colors alias the input array")
	}
}

func TestResolveColorsShapeMismatch(t *testing.T) {
	c := ArrayFromRows([][]float32{{1, 0, 0, 1}})
	_, err := ResolveColors(RGBA(c), 5, "", 1.0)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("error = %v, want *ShapeError", err)
	}
	if shapeErr.WantRows != 5 || shapeErr.WantCols != 4 {
		t.Errorf("want shape = (%d, %d), want (5, 4)", shapeErr.WantRows, shapeErr.WantCols)
	}
}

func TestResolveColorsConflicts(t *testing.T) {
	rgba := ArrayFromRows([][]float32{{1, 0, 0, 1}})

	tests := []struct {
		name string
		spec ColorSpec
		cmap string
	}{
		{"explicit colors with cmap", RGBA(rgba), "viridis"},
		{"labels without cmap", Labels([]int{0}), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveColors(tt.spec, 1, tt.cmap, 1.0)
			if !errors.Is(err, ErrConfig) {
				t.Errorf("error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestResolveColorsLabels(t *testing.T) {
	got, err := ResolveColors(Labels([]int{2, 0, 2, 1}), 4, "viridis", 1.0)
	if err != nil {
		t.Fatalf("ResolveColors() error = %v", err)
	}
	if got.Rows != 4 || got.Cols != 4 {
		t.Fatalf("shape = (%d, %d), want (4, 4)", got.Rows, got.Cols)
	}
	// Equal labels share a color.
	for j := 0; j < 4; j++ {
		if got.At(0, j) != got.At(2, j) {
			t.Fatalf("rows 0 and 2 share label 2 but differ at channel %d", j)
		}
	}
	// Distinct labels get distinct colors.
	same := true
	for j := 0; j < 3; j++ {
		if got.At(0, j) != got.At(1, j) {
			same = false
		}
	}
	if same {
		t.Error("labels 2 and 0 resolved to the same color")
	}
}

func TestResolveColorsLabelCountMismatch(t *testing.T) {
	_, err := ResolveColors(Labels([]int{0, 1}), 3, "viridis", 1.0)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestResolveColorsUnknownCmap(t *testing.T) {
	_, err := ResolveColors(nil, 3, "nope", 1.0)
	if !errors.Is(err, cmap.ErrUnknownColormap) {
		t.Fatalf("error = %v, want cmap.ErrUnknownColormap", err)
	}
}

func TestResolveColorsNoColors(t *testing.T) {
	got, err := ResolveColors(NoColors(), 3, "", 1.0)
	if err != nil {
		t.Fatalf("ResolveColors() error = %v", err)
	}
	if got != nil {
		t.Errorf("colors = %v, want nil (resolution suppressed)", got)
	}
}
