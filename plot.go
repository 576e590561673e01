package fastplot

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor builds a graphic of one kind from data and options.
// Registered constructors are invoked by Plot.Make.
type Constructor func(data *Array, opts ...GraphicOption) (Graphic, error)

// ErrUnknownKind is returned by Make for kind names that are not
// registered.
var ErrUnknownKind = fmt.Errorf("%w: unknown graphic kind", ErrValidation)

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

// Register adds a graphic kind to the global registry, making it
// available through Plot.Make. Registering a name that already exists
// replaces the previous constructor.
//
// The built-in kinds "image", "scatter", "line" and "histogram" are
// registered at package init.
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = ctor
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupKind(name string) (Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[name]
	return ctor, ok
}

func init() {
	Register("image", func(data *Array, opts ...GraphicOption) (Graphic, error) {
		return NewImage(data, opts...)
	})
	Register("scatter", func(data *Array, opts ...GraphicOption) (Graphic, error) {
		return NewScatter(data, opts...)
	})
	Register("line", func(data *Array, opts ...GraphicOption) (Graphic, error) {
		return NewLine(data, opts...)
	})
	Register("histogram", func(data *Array, opts ...GraphicOption) (Graphic, error) {
		return NewHistogram(data, opts...)
	})
}

// Plot is the drawable container graphics are registered with. It
// corresponds to one rendering surface; the surrounding canvas,
// camera and frame loop are the host application's concern.
//
// Plot is NOT safe for concurrent use.
type Plot struct {
	graphics []Graphic
}

// NewPlot creates an empty plot.
func NewPlot() *Plot {
	return &Plot{}
}

// Make constructs a graphic by registered kind name and adds it to the
// plot. Construction is atomic: on error, nothing is registered.
func (p *Plot) Make(kind string, data *Array, opts ...GraphicOption) (Graphic, error) {
	ctor, ok := lookupKind(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	g, err := ctor(data, opts...)
	if err != nil {
		return nil, err
	}
	p.Add(g)
	return g, nil
}

// Add registers an already-built graphic with the plot.
func (p *Plot) Add(g Graphic) {
	p.graphics = append(p.graphics, g)
}

// Graphics returns the registered graphics in registration order. The
// returned slice is the plot's own; callers must not modify it.
func (p *Plot) Graphics() []Graphic { return p.graphics }

// Image builds an image graphic and adds it to the plot.
func (p *Plot) Image(data *Array, opts ...GraphicOption) (*ImageGraphic, error) {
	g, err := NewImage(data, opts...)
	if err != nil {
		return nil, err
	}
	p.Add(g)
	return g, nil
}

// Scatter builds a scatter graphic and adds it to the plot.
func (p *Plot) Scatter(positions *Array, opts ...GraphicOption) (*ScatterGraphic, error) {
	g, err := NewScatter(positions, opts...)
	if err != nil {
		return nil, err
	}
	p.Add(g)
	return g, nil
}

// Line builds a line graphic and adds it to the plot.
func (p *Plot) Line(data *Array, opts ...GraphicOption) (*LineGraphic, error) {
	g, err := NewLine(data, opts...)
	if err != nil {
		return nil, err
	}
	p.Add(g)
	return g, nil
}

// Histogram builds a histogram graphic and adds it to the plot.
func (p *Plot) Histogram(data *Array, opts ...GraphicOption) (*HistogramGraphic, error) {
	g, err := NewHistogram(data, opts...)
	if err != nil {
		return nil, err
	}
	p.Add(g)
	return g, nil
}
