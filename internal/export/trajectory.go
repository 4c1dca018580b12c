// Package export renders finished runs as image files using gonum/plot.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/bps/internal/vecmath"
)

var (
	ErrNoData        = errors.New("nothing to plot")
	ErrUnknownFormat = errors.New("unknown image format")
	ErrUnknownPlane  = errors.New("unknown projection plane")
)

// Plane selects the two coordinates a trajectory plot shows.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

const axisNames = "xyz"

// Default image size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

func (p Plane) axes() (int, int, error) {
	switch p {
	case PlaneXY, "":
		return 0, 1, nil
	case PlaneXZ:
		return 0, 2, nil
	case PlaneYZ:
		return 1, 2, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPlane, string(p))
}

// TrajectoryPlot builds a plot of every particle path projected onto plane.
// frames is indexed by sample then particle. Non-finite samples are skipped.
func TrajectoryPlot(title string, frames [][]vecmath.ThreeVector, plane Plane) (*plot.Plot, error) {
	a, b, err := plane.axes()
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 || len(frames[0]) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = axisNames[a : a+1]
	p.Y.Label.Text = axisNames[b : b+1]
	p.Add(plotter.NewGrid())

	n := len(frames[0])
	for i := range n {
		xys := make(plotter.XYs, 0, len(frames))
		for _, f := range frames {
			if i >= len(f) {
				continue
			}
			x, y := f[i].At(a), f[i].At(b)
			if !finite(x) || !finite(y) {
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		if len(xys) == 0 {
			continue
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1)

		end, err := plotter.NewScatter(xys[len(xys)-1:])
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		end.GlyphStyle.Color = plotutil.Color(i)
		end.GlyphStyle.Shape = draw.CircleGlyph{}
		end.GlyphStyle.Radius = vg.Points(3)

		p.Add(line, end)
		p.Legend.Add(fmt.Sprintf("p%d", i), line)
	}
	return p, nil
}

// SeriesPlot builds a line plot of values against times.
func SeriesPlot(title, ylabel string, times, values []float64) (*plot.Plot, error) {
	n := min(len(times), len(values))
	xys := make(plotter.XYs, 0, n)
	for i := range n {
		if finite(times[i]) && finite(values[i]) {
			xys = append(xys, plotter.XY{X: times[i], Y: values[i]})
		}
	}
	if len(xys) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = plotutil.Color(0)
	p.Add(line)
	return p, nil
}

// Write encodes p in the given format ("png", "svg", "pdf", "eps", ...).
func Write(w io.Writer, p *plot.Plot, format string, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnknownFormat, format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes p to path, picking the format from the file extension.
// A file that fails to encode is removed.
func Save(path string, p *plot.Plot, width, height vg.Length) (err error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Write(f, p, ext, width, height)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
