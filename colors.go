package fastplot

import "github.com/gogpu/fastplot/cmap"

// ColorSpec describes how per-datapoint colors should be produced.
// This is a sealed interface - only types in this package implement it.
//
// The variants are:
//   - nil: use defaults (opaque white, or the graphic's colormap when
//     one is configured)
//   - NoColors: suppress color resolution entirely
//   - RGBA: explicit (N, 4) color rows
//   - Labels: per-point integer labels, colored through a colormap
type ColorSpec interface {
	isColorSpec()
}

type noColors struct{}

func (noColors) isColorSpec() {}

// NoColors returns the sentinel spec that suppresses color resolution
// entirely. A graphic built with it carries no resolved colors. This
// is distinct from a nil spec, which requests the defaults.
func NoColors() ColorSpec { return noColors{} }

type rgbaColors struct {
	values *Array
}

func (rgbaColors) isColorSpec() {}

// RGBA wraps an explicit (N, 4) color array. The row count must equal
// the datapoint count of the graphic being built.
func RGBA(values *Array) ColorSpec { return rgbaColors{values: values} }

type labelColors struct {
	values []int
}

func (labelColors) isColorSpec() {}

// Labels wraps per-point integer labels. Each distinct label is mapped
// to one color of the graphic's colormap; a colormap must be
// configured or resolution fails.
func Labels(values []int) ColorSpec { return labelColors{values: values} }

// ResolveColors turns a color specification into a (count, 4) float32
// RGBA array. The rules, first match wins:
//
//  1. nil spec, no colormap: every row is opaque white.
//  2. nil spec, colormap set: count colors sampled evenly along the map.
//  3. RGBA, no colormap: validated against shape (count, 4) and passed
//     through by value.
//  4. Labels, colormap set: each label mapped to a colormap color.
//  5. Any other combination fails with ErrUnknownColorFormat.
//
// A NoColors spec short-circuits to (nil, nil): the caller asked for no
// colors at all. Inputs are never mutated.
func ResolveColors(spec ColorSpec, count int, cmapName string, alpha float32) (*Array, error) {
	switch c := spec.(type) {
	case nil:
		if cmapName == "" {
			out := NewArray(count, 4, nil)
			for i := 0; i < count; i++ {
				row := out.Row(i)
				row[0], row[1], row[2], row[3] = 1, 1, 1, 1
			}
			return out, nil
		}
		flat, err := cmap.Sample(count, cmapName, alpha)
		if err != nil {
			return nil, err
		}
		return NewArray(count, 4, flat), nil

	case noColors:
		return nil, nil

	case rgbaColors:
		if cmapName != "" {
			// Explicit colors and a colormap contradict each other.
			return nil, ErrUnknownColorFormat
		}
		v := c.values
		if v == nil || v.Rows != count || v.Cols != 4 {
			gotR, gotC := 0, 0
			if v != nil {
				gotR, gotC = v.Rows, v.Cols
			}
			return nil, &ShapeError{
				What: "colors", WantRows: count, WantCols: 4,
				GotRows: gotR, GotCols: gotC,
			}
		}
		return v.Clone(), nil

	case labelColors:
		if cmapName == "" {
			return nil, ErrUnknownColorFormat
		}
		if len(c.values) != count {
			return nil, &ShapeError{
				What: "labels", WantRows: count, WantCols: 1,
				GotRows: len(c.values), GotCols: 1,
			}
		}
		flat, err := cmap.MapLabels(c.values, cmapName, alpha)
		if err != nil {
			return nil, err
		}
		return NewArray(count, 4, flat), nil

	default:
		return nil, ErrUnknownColorFormat
	}
}
