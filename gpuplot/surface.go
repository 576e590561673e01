package gpuplot

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/fastplot"
	"github.com/gogpu/fastplot/scene"
)

// Common errors returned by Surface operations.
var (
	// ErrSurfaceClosed is returned when operations are attempted on a
	// closed surface.
	ErrSurfaceClosed = errors.New("gpuplot: surface is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpuplot: nil DeviceProvider")

	// ErrNilPlot is returned when a nil Plot is passed.
	ErrNilPlot = errors.New("gpuplot: nil Plot")

	// ErrInvalidRenderer is returned when the draw context cannot
	// create textures.
	ErrInvalidRenderer = errors.New("gpuplot: renderer must implement gpucontext.TextureCreator")
)

// textureDestroyer is the interface for destroying GPU textures.
type textureDestroyer interface {
	Destroy()
}

// imageSlot tracks the GPU state of one image graphic.
type imageSlot struct {
	tex     any    // GPU texture once created
	pending []byte // RGBA8 data awaiting texture creation
}

// Surface binds a Plot to a GPU device and keeps its image textures
// uploaded. Vertex-buffer geometry is consumed directly by the host
// renderer through the scene dirty ranges; the surface's job is the
// texture path.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	plot     *fastplot.Plot
	provider gpucontext.DeviceProvider
	slots    map[*fastplot.ImageGraphic]*imageSlot
	closed   bool
}

// New creates a Surface for the given plot. The provider should come
// from the host application (e.g. gogpu.App.GPUContextProvider()).
func New(provider gpucontext.DeviceProvider, plot *fastplot.Plot) (*Surface, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if plot == nil {
		return nil, ErrNilPlot
	}
	return &Surface{
		plot:     plot,
		provider: provider,
		slots:    map[*fastplot.ImageGraphic]*imageSlot{},
	}, nil
}

// Provider returns the DeviceProvider associated with this surface.
// Returns nil when the surface is closed.
func (s *Surface) Provider() gpucontext.DeviceProvider {
	if s.closed {
		return nil
	}
	return s.provider
}

// Flush prepares GPU uploads for every dirty image graphic: existing
// textures are updated in place, textures not yet created are staged
// for creation during the next RenderTo (texture creation needs the
// draw context's creator). Dirty state is cleared only after a
// successful upload or staging.
func (s *Surface) Flush() error {
	if s.closed {
		return ErrSurfaceClosed
	}

	for _, g := range s.plot.Graphics() {
		img, ok := g.(*fastplot.ImageGraphic)
		if !ok {
			continue
		}
		slot := s.slots[img]
		if slot == nil {
			slot = &imageSlot{}
			s.slots[img] = slot
		}

		_, dirty := img.Texture().DirtyRegion()
		if !dirty && (slot.tex != nil || slot.pending != nil) {
			continue
		}

		data := imageRGBA8(img)
		if slot.tex == nil {
			slot.pending = data
			img.Texture().ClearDirty()
			continue
		}
		if updater, ok := slot.tex.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err != nil {
				return fmt.Errorf("gpuplot: texture update failed: %w", err)
			}
		}
		img.Texture().ClearDirty()
		fastplot.Logger().Debug("image texture updated",
			"rows", img.Texture().Rows(), "cols", img.Texture().Cols())
	}
	return nil
}

// RenderTo flushes pending uploads and draws every image texture into
// the host draw context. The dc parameter should be obtained from
// gogpu.Context.AsTextureDrawer(). Each image is drawn at its scene
// object's position.
func (s *Surface) RenderTo(dc gpucontext.TextureDrawer) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if err := s.Flush(); err != nil {
		return err
	}

	for _, g := range s.plot.Graphics() {
		img, ok := g.(*fastplot.ImageGraphic)
		if !ok {
			continue
		}
		slot := s.slots[img]
		if slot == nil {
			continue
		}

		if slot.pending != nil {
			creator := dc.TextureCreator()
			if creator == nil {
				return ErrInvalidRenderer
			}
			tex := img.Texture()
			realTex, err := creator.NewTextureFromRGBA(tex.Cols(), tex.Rows(), slot.pending)
			if err != nil {
				return fmt.Errorf("gpuplot: NewTextureFromRGBA failed: %w", err)
			}
			// Replacing a texture frees the old one only after the new
			// upload completed; the GPU may still read the old
			// descriptor until then.
			if slot.tex != nil {
				if destroyer, ok := slot.tex.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			slot.tex = realTex
			slot.pending = nil
			fastplot.Logger().Info("image texture created",
				"rows", tex.Rows(), "cols", tex.Cols())
		}

		gpuTex, ok := slot.tex.(gpucontext.Texture)
		if !ok {
			continue
		}
		root, ok := img.Root().(*scene.Image)
		if !ok {
			continue
		}
		if err := dc.DrawTexture(gpuTex, root.Position.X, root.Position.Y); err != nil {
			return fmt.Errorf("gpuplot: draw failed: %w", err)
		}
	}
	return nil
}

// Close releases all GPU textures held by the surface. Close is
// idempotent; the surface must not be used afterwards.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	for _, slot := range s.slots {
		if slot.tex != nil {
			if destroyer, ok := slot.tex.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			slot.tex = nil
		}
	}
	s.slots = nil
	s.provider = nil
	return nil
}

// imageRGBA8 converts an image graphic's float32 grid to RGBA8 texels
// by mapping each intensity through the material's contrast limits and
// colormap lookup table. This is the CPU fallback of the sampling the
// image shader performs on GPU.
func imageRGBA8(img *fastplot.ImageGraphic) []byte {
	tex := img.Texture()
	mat := img.Material()
	lo, hi := mat.Clim()
	span := hi - lo
	if span == 0 {
		span = 1
	}

	data := tex.Data()
	out := make([]byte, len(data)*4)
	for i, v := range data {
		t := (v - lo) / span
		r, g, b, a := mat.Map.At(t)
		out[i*4+0] = r
		out[i*4+1] = g
		out[i*4+2] = b
		out[i*4+3] = a
	}
	return out
}
