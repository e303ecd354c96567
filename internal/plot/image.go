package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/dualnum/internal/curve"
)

// dpi is the resolution gonum/plot rasterises at. Options sizes are pixels.
const dpi = 96

// imageFormats are the extensions gonum/plot can save.
var imageFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true,
}

// Image collects primitives into a gonum/plot figure.
type Image struct {
	frame
	width, height int
	fg, bg        color.RGBA
}

func NewImage(opts Options) (*Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	fg, err := ParseColor(opts.Color)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return nil, err
	}
	return &Image{width: opts.Width, height: opts.Height, fg: fg, bg: bg}, nil
}

// Figure builds the gonum/plot figure. Non-finite points split the path and are left out
// of markers and arrows.
func (im *Image) Figure() (*gplot.Plot, error) {
	if im.empty() {
		return nil, ErrEmpty
	}

	p := gplot.New()
	p.BackgroundColor = im.bg

	for _, path := range im.paths {
		for _, run := range finiteRuns(path) {
			if err := im.addLine(p, run, 1.5); err != nil {
				return nil, err
			}
		}
	}

	for _, s := range im.scatters {
		for _, run := range finiteRuns(s.pts) {
			sc, err := plotter.NewScatter(run)
			if err != nil {
				return nil, err
			}
			sc.GlyphStyle.Color = im.fg
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(math.Sqrt(s.size) / 2)
			p.Add(sc)
		}
	}

	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	im.points(b.add)
	if b.minX > b.maxX {
		b = bounds{-1, 1, -1, 1}
	}
	span := math.Max(b.maxX-b.minX, b.maxY-b.minY)

	for _, a := range im.arrows(im.arrowScale(span)) {
		if !finite(a.from.X) || !finite(a.from.Y) || !finite(a.to.X) || !finite(a.to.Y) || a.from == a.to {
			continue
		}
		b.add(a.to)
		shaft, head := arrowLines(a)
		if err := im.addLine(p, shaft, 1); err != nil {
			return nil, err
		}
		if err := im.addLine(p, head, 1); err != nil {
			return nil, err
		}
	}

	equalLimits(p, b)
	return p, nil
}

func (im *Image) addLine(p *gplot.Plot, xys plotter.XYs, width float64) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = im.fg
	l.LineStyle.Width = vg.Points(width)
	p.Add(l)
	return nil
}

func (im *Image) size() (vg.Length, vg.Length) {
	return vg.Length(im.width) * vg.Inch / dpi, vg.Length(im.height) * vg.Inch / dpi
}

// Encode writes the figure to w in format, e.g. "png" or "svg".
func (im *Image) Encode(w io.Writer, format string) error {
	p, err := im.Figure()
	if err != nil {
		return err
	}
	width, height := im.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes the figure; the format follows the extension of path.
func (im *Image) Save(path string) error {
	p, err := im.Figure()
	if err != nil {
		return err
	}
	width, height := im.size()
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}

// finiteRuns splits pts at non-finite points into runs gonum/plot accepts.
func finiteRuns(pts []curve.Point) []plotter.XYs {
	var runs []plotter.XYs
	var run plotter.XYs
	for _, pt := range pts {
		if !finite(pt.X) || !finite(pt.Y) {
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}
			continue
		}
		run = append(run, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}

// arrowLines returns the shaft and a two-segment head a quarter of the shaft
// long, opened 2π/7 around the shaft.
func arrowLines(a arrow) (plotter.XYs, plotter.XYs) {
	dx, dy := a.to.X-a.from.X, a.to.Y-a.from.Y
	length := math.Hypot(dx, dy) * 0.25
	angle := math.Atan2(dy, dx)

	head := make(plotter.XYs, 3)
	for i, side := range []float64{-1, 0, 1} {
		if side == 0 {
			head[i] = plotter.XY{X: a.to.X, Y: a.to.Y}
			continue
		}
		h := angle + math.Pi - side*math.Pi/7
		head[i] = plotter.XY{X: a.to.X + length*math.Cos(h), Y: a.to.Y + length*math.Sin(h)}
	}

	shaft := plotter.XYs{{X: a.from.X, Y: a.from.Y}, {X: a.to.X, Y: a.to.Y}}
	return shaft, head
}

// equalLimits centres both axes on b with the same span plus 10% padding.
func equalLimits(p *gplot.Plot, b bounds) {
	half := math.Max(b.maxX-b.minX, b.maxY-b.minY) / 2 * 1.1
	if half == 0 {
		half = 1
	}
	cx, cy := (b.minX+b.maxX)/2, (b.minY+b.maxY)/2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}
