package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bps/internal/vecmath"
)

// PlotSeries renders data as an ASCII line chart. Series longer than width
// are reduced to width points first.
func PlotSeries(data []float64, caption string, width, height int) string {
	if len(data) == 0 {
		return ""
	}
	if width > 0 && len(data) > width {
		data = Downsample(data, width)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Downsample picks n evenly spaced samples, always keeping both ends.
func Downsample(data []float64, n int) []float64 {
	if n <= 0 || len(data) <= n {
		return append([]float64(nil), data...)
	}
	if n == 1 {
		return []float64{data[len(data)-1]}
	}
	out := make([]float64, n)
	step := float64(len(data)-1) / float64(n-1)
	for i := range out {
		out[i] = data[int(math.Round(float64(i)*step))]
	}
	return out
}

// SeparationSeries returns the closest pair distance in each frame.
// Frames with fewer than two particles yield +Inf.
func SeparationSeries(frames [][]vecmath.ThreeVector) []float64 {
	out := make([]float64, len(frames))
	for k, f := range frames {
		best := math.Inf(1)
		for i := range f {
			for j := i + 1; j < len(f); j++ {
				best = math.Min(best, f[i].DistanceTo(f[j]))
			}
		}
		out[k] = best
	}
	return out
}

// ComponentSeries extracts one coordinate of one particle over all frames.
func ComponentSeries(frames [][]vecmath.ThreeVector, particle, axis int) []float64 {
	out := make([]float64, 0, len(frames))
	for _, f := range frames {
		if particle < len(f) {
			out = append(out, f[particle].At(axis))
		}
	}
	return out
}
