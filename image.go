package fastplot

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fastplot/cmap"
	"github.com/gogpu/fastplot/numeric"
	"github.com/gogpu/fastplot/scene"
)

// defaultImageCmap is the colormap used when none is configured.
const defaultImageCmap = "plasma"

// ImageGraphic wraps a 2-D intensity array as a textured quad. The
// texture grid aliases the graphic's data, so UpdateData overwrites it
// in place and marks the whole region dirty.
type ImageGraphic struct {
	GraphicBase

	texture *scene.Texture
	root    *scene.Image
}

// NewImage builds an image graphic from a (height, width) array.
// If intensity bounds are not configured with WithClim, both are
// estimated together via numeric.ApproxMinMax; bounds are never mixed
// between configured and estimated.
//
// Data of other shapes is not rejected here; the renderer decides what
// it can draw.
func NewImage(data *Array, opts ...GraphicOption) (*ImageGraphic, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cmap == "" {
		cfg.cmap = defaultImageCmap
	}

	base, err := newGraphicBase(data, &cfg)
	if err != nil {
		return nil, err
	}

	climMin, climMax := cfg.climMin, cfg.climMax
	if !cfg.climSet {
		climMin, climMax = numeric.ApproxMinMax(data.Data)
	}

	lut, err := cmap.Texture(cfg.cmap)
	if err != nil {
		return nil, err
	}

	g := &ImageGraphic{GraphicBase: base}
	g.texture = scene.NewTexture(g.data.Data, data.Rows, data.Cols)
	g.root = scene.NewImage("image", scene.NewGridGeometry(g.texture), &scene.ImageMaterial{
		ClimMin: climMin,
		ClimMax: climMax,
		Map:     lut,
	})
	g.texture.MarkAllDirty()

	Logger().Debug("image graphic created",
		"rows", data.Rows, "cols", data.Cols, "cmap", cfg.cmap)
	return g, nil
}

// Root returns the image scene object.
func (g *ImageGraphic) Root() scene.Node { return g.root }

// Texture returns the texture grid backing the image.
func (g *ImageGraphic) Texture() *scene.Texture { return g.texture }

// Material returns the colormap-sampling material of the image.
func (g *ImageGraphic) Material() *scene.ImageMaterial { return g.root.Material }

// Clim returns the material's intensity bounds.
func (g *ImageGraphic) Clim() (minv, maxv float32) {
	return g.root.Material.Clim()
}

// SetClim replaces both intensity bounds on the material.
func (g *ImageGraphic) SetClim(minv, maxv float32) {
	g.root.Material.SetClim(minv, maxv)
}

// UpdateCmap replaces the material's colormap texture wholesale.
// Alpha scales the alpha channel of the new lookup table.
func (g *ImageGraphic) UpdateCmap(name string, alpha float32) error {
	lut, err := cmap.Texture(name)
	if err != nil {
		return err
	}
	if alpha < 1 {
		for i := 3; i < len(lut.Pix); i += 4 {
			lut.Pix[i] = byte(float32(lut.Pix[i]) * alpha)
		}
	}
	g.root.Material.Map = lut
	return nil
}

// UpdateData overwrites the full texture buffer in place and marks the
// entire region dirty for re-upload. No partial-region optimization is
// applied. The new data must hold the same element count as the
// original.
func (g *ImageGraphic) UpdateData(data *Array) error {
	g.texture.SetData(data.Data)
	return nil
}

// ImageArray converts img to a (height, width) grayscale intensity
// array in [0, 255]. If maxDim is positive and img's longest side
// exceeds it, the image is resampled bilinearly so the longest side
// equals maxDim.
func ImageArray(img image.Image, maxDim int) *Array {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if maxDim > 0 && (w > maxDim || h > maxDim) {
		scale := float64(maxDim) / float64(max(w, h))
		dw := int(float64(w)*scale + 0.5)
		dh := int(float64(h)*scale + 0.5)
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img, b = dst, dst.Bounds()
		w, h = dw, dh
	}

	a := NewArray(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// BT.601 luma, 16-bit channels scaled to [0, 255].
			lum := 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(bl)
			a.Data[y*w+x] = lum / 257
		}
	}
	return a
}
