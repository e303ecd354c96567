package plot

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/dualnum/internal/curve"
)

// Sink receives drawing primitives and writes an image.
type Sink interface {
	Plot(path []curve.Point)
	Scatter(pts []curve.Point, size float64)
	Quiver(pts []curve.Point, dirs []curve.Vec)
	Save(path string) error
}

type Options struct {
	Width      int
	Height     int
	Color      string
	Background string
}

// DefaultOptions uses the matplotlib default blue on white.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Color: "#1f77b4", Background: "#ffffff"}
}

// Open returns a sink for the extension of path: .txt gives a braille
// [Canvas], every format gonum/plot can encode gives an [Image].
func Open(path string, opts Options) (Sink, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch {
	case ext == "txt":
		return NewCanvas(opts.Width/8, opts.Height/16), nil
	case imageFormats[ext]:
		return NewImage(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Draw renders the path, the markers and the tangent arrows of s.
func Draw(sink Sink, s *curve.Samples) {
	sink.Plot(s.Path)
	sink.Scatter(s.Markers, 20)
	sink.Quiver(s.Markers, s.Tangents)
}

func ParseColor(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

type scatter struct {
	pts  []curve.Point
	size float64
}

type quiver struct {
	pts  []curve.Point
	dirs []curve.Vec
}

// frame collects primitives until Save, when the bounds are known.
type frame struct {
	paths    [][]curve.Point
	scatters []scatter
	quivers  []quiver
}

func (f *frame) Plot(path []curve.Point) {
	f.paths = append(f.paths, path)
}

func (f *frame) Scatter(pts []curve.Point, size float64) {
	f.scatters = append(f.scatters, scatter{pts: pts, size: size})
}

func (f *frame) Quiver(pts []curve.Point, dirs []curve.Vec) {
	n := min(len(pts), len(dirs))
	f.quivers = append(f.quivers, quiver{pts: pts[:n], dirs: dirs[:n]})
}

func (f *frame) empty() bool {
	return len(f.paths) == 0 && len(f.scatters) == 0 && len(f.quivers) == 0
}

// arrowScale maps the longest tangent to a tenth of the data span.
func (f *frame) arrowScale(span float64) float64 {
	longest := 0.0
	for _, q := range f.quivers {
		for _, d := range q.dirs {
			if l := math.Hypot(d.DX, d.DY); l > longest && !math.IsInf(l, 0) {
				longest = l
			}
		}
	}
	if longest == 0 || span == 0 {
		return 0
	}
	return 0.1 * span / longest
}

type arrow struct {
	from, to curve.Point
}

// arrows resolves every quiver into data-space segments.
func (f *frame) arrows(scale float64) []arrow {
	var out []arrow
	for _, q := range f.quivers {
		for i, p := range q.pts {
			d := q.dirs[i]
			out = append(out, arrow{from: p, to: curve.Point{X: p.X + d.DX*scale, Y: p.Y + d.DY*scale}})
		}
	}
	return out
}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func (b *bounds) add(p curve.Point) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return
	}
	b.minX = math.Min(b.minX, p.X)
	b.maxX = math.Max(b.maxX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (f *frame) points(fn func(curve.Point)) {
	for _, path := range f.paths {
		for _, p := range path {
			fn(p)
		}
	}
	for _, s := range f.scatters {
		for _, p := range s.pts {
			fn(p)
		}
	}
	for _, q := range f.quivers {
		for _, p := range q.pts {
			fn(p)
		}
	}
}

// layout computes the data-to-pixel transform and the resolved arrows.
func (f *frame) layout(width, height int) (transform, []arrow) {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	f.points(b.add)
	if b.minX > b.maxX {
		b = bounds{-1, 1, -1, 1}
	}

	span := math.Max(b.maxX-b.minX, b.maxY-b.minY)
	arrows := f.arrows(f.arrowScale(span))
	for _, a := range arrows {
		b.add(a.to)
	}

	return newTransform(b, width, height), arrows
}

// transform maps data space to pixel space with a uniform scale, 10% padding
// and y pointing up.
type transform struct {
	cx, cy float64
	scale  float64
	w, h   float64
}

func newTransform(b bounds, width, height int) transform {
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	w, h := float64(width), float64(height)
	scale := math.Min(w/(rangeX*1.2), h/(rangeY*1.2))
	return transform{
		cx:    (b.minX + b.maxX) / 2,
		cy:    (b.minY + b.maxY) / 2,
		scale: scale,
		w:     w,
		h:     h,
	}
}

func (t transform) apply(p curve.Point) (float64, float64) {
	return t.w/2 + (p.X-t.cx)*t.scale, t.h/2 - (p.Y-t.cy)*t.scale
}

// maxCoord bounds the pixel coordinates a raster segment may reach; runaway
// tangents beyond it are dropped instead of walked pixel by pixel.
const maxCoord = 1 << 20

func drawable(vs ...float64) bool {
	for _, v := range vs {
		if !finite(v) || math.Abs(v) > maxCoord {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
