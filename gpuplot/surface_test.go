package gpuplot

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/fastplot"
)

// stubProvider satisfies gpucontext.DeviceProvider without a real GPU.
// Flush and staging never touch the device, so zero values suffice.
type stubProvider struct {
	gpucontext.DeviceProvider
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, fastplot.NewPlot()); !errors.Is(err, ErrNilProvider) {
		t.Errorf("New(nil, plot) error = %v, want ErrNilProvider", err)
	}
	if _, err := New(stubProvider{}, nil); !errors.Is(err, ErrNilPlot) {
		t.Errorf("New(provider, nil) error = %v, want ErrNilPlot", err)
	}
	s, err := New(stubProvider{}, fastplot.NewPlot())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Provider() == nil {
		t.Error("Provider() = nil on an open surface")
	}
}

func TestCloseIdempotent(t *testing.T) {
	s, err := New(stubProvider{}, fastplot.NewPlot())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if s.Provider() != nil {
		t.Error("Provider() != nil after Close")
	}
	if err := s.Flush(); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Flush() after Close error = %v, want ErrSurfaceClosed", err)
	}
}

func TestFlushStagesNewImageTexture(t *testing.T) {
	plot := fastplot.NewPlot()
	img, err := plot.Image(fastplot.NewArray(2, 2, []float32{0, 1, 2, 3}))
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}

	s, err := New(stubProvider{}, plot)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	slot := s.slots[img]
	if slot == nil {
		t.Fatal("no slot created for image graphic")
	}
	if slot.pending == nil {
		t.Fatal("no pending data staged for a new texture")
	}
	if len(slot.pending) != 2*2*4 {
		t.Errorf("len(pending) = %d, want 16", len(slot.pending))
	}
	if _, dirty := img.Texture().DirtyRegion(); dirty {
		t.Error("texture still dirty after staging")
	}
}

func TestFlushSkipsCleanImages(t *testing.T) {
	plot := fastplot.NewPlot()
	img, err := plot.Image(fastplot.NewArray(2, 2, nil))
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}

	s, err := New(stubProvider{}, plot)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	staged := s.slots[img].pending

	// A second flush with nothing dirty must not restage.
	if err := s.Flush(); err != nil {
		t.Fatalf("second Flush() error = %v", err)
	}
	if &s.slots[img].pending[0] != &staged[0] {
		t.Error("clean image was restaged")
	}
}

func TestFlushIgnoresNonImageGraphics(t *testing.T) {
	plot := fastplot.NewPlot()
	if _, err := plot.Scatter(fastplot.ArrayFromRows([][]float32{{0, 0}, {1, 1}})); err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}

	s, err := New(stubProvider{}, plot)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if len(s.slots) != 0 {
		t.Errorf("len(slots) = %d after flushing a scatter-only plot, want 0", len(s.slots))
	}
}

func TestImageRGBA8MapsThroughClim(t *testing.T) {
	img, err := fastplot.NewImage(
		fastplot.NewArray(1, 3, []float32{0, 5, 10}),
		fastplot.WithClim(0, 10),
		fastplot.WithCmap("gray"),
	)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}

	out := imageRGBA8(img)
	if len(out) != 12 {
		t.Fatalf("len = %d, want 12", len(out))
	}
	// Intensity 0 maps to the black end, 10 to the white end.
	if out[0] != 0 {
		t.Errorf("texel 0 r = %d, want 0", out[0])
	}
	if out[8] != 255 {
		t.Errorf("texel 2 r = %d, want 255", out[8])
	}
	if out[3] != 255 || out[7] != 255 || out[11] != 255 {
		t.Error("alpha channel is not opaque")
	}
	// The middle intensity lands mid-table.
	if out[4] < 120 || out[4] > 135 {
		t.Errorf("texel 1 r = %d, want mid-gray", out[4])
	}
}

func TestImageRGBA8DegenerateClim(t *testing.T) {
	img, err := fastplot.NewImage(
		fastplot.NewArray(1, 2, []float32{3, 3}),
		fastplot.WithClim(3, 3),
	)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	out := imageRGBA8(img)
	if len(out) != 8 {
		t.Fatalf("len = %d, want 8", len(out))
	}
}
