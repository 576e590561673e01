// Package cmap provides named colormaps for fastplot graphics.
//
// A colormap is a table of RGB stops interpolated linearly over [0, 1].
// Sample pulls n evenly spaced colors, MapLabels assigns one color per
// distinct integer label, and Texture builds an RGBA8 lookup texture
// for image materials. All functions are deterministic for fixed
// inputs; unknown names fail with ErrUnknownColormap.
package cmap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/fastplot/cache"
	"github.com/gogpu/fastplot/scene"
)

// ErrUnknownColormap is returned for colormap names that are not
// registered.
var ErrUnknownColormap = errors.New("cmap: unknown colormap")

// lutSize is the texel count of generated lookup textures.
const lutSize = 256

// Colormap interpolates linearly between RGB stops.
type Colormap struct {
	stops [][3]float32
}

// At returns the RGB color at normalized position t in [0, 1].
func (c Colormap) At(t float32) (r, g, b float32) {
	if t <= 0 {
		s := c.stops[0]
		return s[0], s[1], s[2]
	}
	if t >= 1 {
		s := c.stops[len(c.stops)-1]
		return s[0], s[1], s[2]
	}
	idx := t * float32(len(c.stops)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.stops) {
		upper = len(c.stops) - 1
	}
	frac := idx - float32(lower)
	lo, hi := c.stops[lower], c.stops[upper]
	return lo[0] + frac*(hi[0]-lo[0]),
		lo[1] + frac*(hi[1]-lo[1]),
		lo[2] + frac*(hi[2]-lo[2])
}

// Get returns the named colormap.
func Get(name string) (Colormap, error) {
	c, ok := colormaps[name]
	if !ok {
		return Colormap{}, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	return c, nil
}

// Names returns the registered colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample returns n RGBA rows evenly spaced along the named colormap,
// flat row-major (n*4 values), with the given alpha on every row.
func Sample(n int, name string, alpha float32) ([]float32, error) {
	c, err := Get(name)
	if err != nil {
		return nil, err
	}
	out := make([]float32, n*4)
	for i := 0; i < n; i++ {
		t := float32(0)
		if n > 1 {
			t = float32(i) / float32(n-1)
		}
		r, g, b := c.At(t)
		out[i*4+0] = r
		out[i*4+1] = g
		out[i*4+2] = b
		out[i*4+3] = alpha
	}
	return out, nil
}

// MapLabels assigns one colormap color per distinct label and returns
// one RGBA row per input label, flat row-major (len(labels)*4 values).
// Distinct labels are ordered ascending and spread evenly over the
// map, so equal labels always share a color and the assignment is
// deterministic.
func MapLabels(labels []int, name string, alpha float32) ([]float32, error) {
	c, err := Get(name)
	if err != nil {
		return nil, err
	}

	distinct := make([]int, 0, len(labels))
	seen := make(map[int]bool, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			distinct = append(distinct, l)
		}
	}
	sort.Ints(distinct)

	byLabel := make(map[int][3]float32, len(distinct))
	for i, l := range distinct {
		t := float32(0)
		if len(distinct) > 1 {
			t = float32(i) / float32(len(distinct)-1)
		}
		r, g, b := c.At(t)
		byLabel[l] = [3]float32{r, g, b}
	}

	out := make([]float32, len(labels)*4)
	for i, l := range labels {
		rgb := byLabel[l]
		out[i*4+0] = rgb[0]
		out[i*4+1] = rgb[1]
		out[i*4+2] = rgb[2]
		out[i*4+3] = alpha
	}
	return out, nil
}

// lutCache holds the sampled base table per colormap name.
var lutCache = cache.New[string, []byte](0, cache.StringHasher)

// Texture builds a 256-texel RGBA8 lookup texture for the named
// colormap, suitable for scene.ImageMaterial.Map. The sampled table is
// cached per name; callers may scale the alpha channel of the result
// in place, so every call returns its own copy.
func Texture(name string) (*scene.LUTTexture, error) {
	base, err := lutCache.GetOrCreate(name, func() ([]byte, error) {
		c, err := Get(name)
		if err != nil {
			return nil, err
		}
		pix := make([]byte, lutSize*4)
		for i := 0; i < lutSize; i++ {
			t := float32(i) / float32(lutSize-1)
			r, g, b := c.At(t)
			pix[i*4+0] = toByte(r)
			pix[i*4+1] = toByte(g)
			pix[i*4+2] = toByte(b)
			pix[i*4+3] = 0xff
		}
		return pix, nil
	})
	if err != nil {
		return nil, err
	}
	pix := make([]byte, len(base))
	copy(pix, base)
	return &scene.LUTTexture{Name: name, Pix: pix}, nil
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return byte(v*255 + 0.5)
}
