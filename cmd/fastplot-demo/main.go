// Command fastplot-demo builds one graphic of every kind and renders
// the image graphic to a PNG through its colormap, without a GPU.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/gogpu/fastplot"
)

func main() {
	var (
		size   = flag.Int("size", 256, "image side length")
		cmap   = flag.String("cmap", "viridis", "colormap name")
		output = flag.String("output", "demo.png", "output file")
		seed   = flag.Int64("seed", 42, "random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	plot := fastplot.NewPlot()

	img, err := plot.Image(waveGrid(*size), fastplot.WithCmap(*cmap))
	if err != nil {
		log.Fatalf("image graphic: %v", err)
	}

	if _, err := plot.Scatter(randomPoints(rng, 500),
		fastplot.WithCmap(*cmap),
		fastplot.WithSize(3)); err != nil {
		log.Fatalf("scatter graphic: %v", err)
	}

	if _, err := plot.Line(sineLine(200), fastplot.WithSize(2)); err != nil {
		log.Fatalf("line graphic: %v", err)
	}

	hist, err := plot.Histogram(normalSamples(rng, 2000))
	if err != nil {
		log.Fatalf("histogram graphic: %v", err)
	}

	log.Printf("plot holds %d graphics (kinds available: %v)",
		len(plot.Graphics()), fastplot.Kinds())
	log.Printf("histogram: %d bins, bin width %.2f", hist.BinCount(), hist.BinWidth())

	if err := savePNG(img, *output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("image graphic saved to %s (%dx%d, %s)",
		*output, *size, *size, *cmap)
}

// waveGrid builds a (n, n) interference pattern.
func waveGrid(n int) *fastplot.Array {
	a := fastplot.NewArray(n, n, nil)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fx := float64(x) / float64(n) * 8 * math.Pi
			fy := float64(y) / float64(n) * 8 * math.Pi
			a.Data[y*n+x] = float32(math.Sin(fx) * math.Cos(fy))
		}
	}
	return a
}

func randomPoints(rng *rand.Rand, n int) *fastplot.Array {
	a := fastplot.NewArray(n, 2, nil)
	for i := 0; i < n; i++ {
		a.Data[i*2] = float32(rng.Float64() * 100)
		a.Data[i*2+1] = float32(rng.Float64() * 100)
	}
	return a
}

func sineLine(n int) *fastplot.Array {
	a := fastplot.NewArray(n, 2, nil)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1) * 4 * math.Pi
		a.Data[i*2] = float32(x)
		a.Data[i*2+1] = float32(math.Sin(x))
	}
	return a
}

func normalSamples(rng *rand.Rand, n int) *fastplot.Array {
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(rng.NormFloat64())
	}
	return fastplot.Vector(v)
}

// savePNG maps the image graphic's grid through its contrast limits
// and colormap, the same sampling the image shader performs on GPU.
func savePNG(g *fastplot.ImageGraphic, path string) error {
	tex := g.Texture()
	mat := g.Material()
	lo, hi := mat.Clim()
	span := hi - lo
	if span == 0 {
		span = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, tex.Cols(), tex.Rows()))
	for y := 0; y < tex.Rows(); y++ {
		for x := 0; x < tex.Cols(); x++ {
			v := tex.Data()[y*tex.Cols()+x]
			r, gc, b, a := mat.Map.At((v - lo) / span)
			out.Set(x, y, color.RGBA{R: r, G: gc, B: b, A: a})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}
