package curve

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/dualnum/internal/dual"
	"github.com/san-kum/dualnum/internal/num"
)

type Point struct {
	X, Y float64
}

type Vec struct {
	DX, DY float64
}

type Options struct {
	// Points is the number of path evaluations over t in [0, 1).
	Points int
	// Samples is the number of markers to keep. Every Points/Samples-th
	// evaluation becomes a marker, so the marker count is
	// ceil(Points / (Points/Samples)).
	Samples int
	// Normalize scales each tangent to unit length. Zero tangents are kept.
	Normalize bool
}

func DefaultOptions() Options {
	return Options{Points: 1000, Samples: 20}
}

func (o Options) Validate() error {
	if o.Points <= 0 || o.Samples <= 0 || o.Samples > o.Points {
		return fmt.Errorf("%w: points=%d samples=%d", ErrInvalidOptions, o.Points, o.Samples)
	}
	return nil
}

func (o Options) stride() int {
	return o.Points / o.Samples
}

type Samples struct {
	Curve    string
	Path     []Point
	Params   []float64
	Markers  []Point
	Tangents []Vec
}

// Valid reports whether every sampled coordinate is finite.
func (s *Samples) Valid() bool {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	for _, p := range s.Path {
		if !finite(p.X) || !finite(p.Y) {
			return false
		}
	}
	for _, v := range s.Tangents {
		if !finite(v.DX) || !finite(v.DY) {
			return false
		}
	}
	return true
}

const minChunk = 256

// Sample evaluates c at t = i/Points for i in [0, Points).
func Sample(ctx context.Context, c Curve, opts Options) (*Samples, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	stride := opts.stride()
	markers := (opts.Points + stride - 1) / stride

	s := &Samples{
		Curve:    c.Name(),
		Path:     make([]Point, opts.Points),
		Params:   make([]float64, markers),
		Markers:  make([]Point, markers),
		Tangents: make([]Vec, markers),
	}

	parallelFor(opts.Points, minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			if i%minChunk == 0 && ctx.Err() != nil {
				return
			}

			t := float64(i) / float64(opts.Points)
			x, y := c.Eval(dual.Var(t))
			s.Path[i] = Point{X: x.Re(), Y: y.Re()}

			if i%stride != 0 {
				continue
			}
			j := i / stride
			v := Vec{DX: x.D(), DY: y.D()}
			if opts.Normalize {
				v = normalize(v)
			}
			s.Params[j] = t
			s.Markers[j] = s.Path[i]
			s.Tangents[j] = v
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	return s, nil
}

func normalize(v Vec) Vec {
	m := num.Hypot(v.DX, v.DY)
	if m == 0 {
		return v
	}
	return Vec{DX: v.DX / m, DY: v.DY / m}
}

// At evaluates c at a single parameter.
func At(c Curve, t float64) (Point, Vec) {
	x, y := c.Eval(dual.Var(t))
	return Point{X: x.Re(), Y: y.Re()}, Vec{DX: x.D(), DY: y.D()}
}
