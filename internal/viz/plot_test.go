package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/bps/internal/vecmath"
)

func TestDownsample(t *testing.T) {
	data := make([]float64, 101)
	for i := range data {
		data[i] = float64(i)
	}

	tests := []struct {
		name  string
		n     int
		want  int
		first float64
		last  float64
	}{
		{"shorter", 11, 11, 0, 100},
		{"two", 2, 2, 0, 100},
		{"one", 1, 1, 100, 100},
		{"longer than data", 500, 101, 0, 100},
		{"zero keeps all", 0, 101, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Downsample(data, tt.n)
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
			if got[0] != tt.first || got[len(got)-1] != tt.last {
				t.Errorf("ends = %v, %v, want %v, %v", got[0], got[len(got)-1], tt.first, tt.last)
			}
		})
	}

	got := Downsample(data, 0)
	got[0] = -1
	if data[0] != 0 {
		t.Error("Downsample must not share storage with its input")
	}
}

func TestSeparationSeries(t *testing.T) {
	frames := [][]vecmath.ThreeVector{
		{{0, 0, 0}, {3, 4, 0}, {10, 0, 0}},
		{{0, 0, 0}, {1, 0, 0}},
		{{0, 0, 0}},
	}
	got := SeparationSeries(frames)

	if got[0] != 5 {
		t.Errorf("frame 0 = %v, want 5", got[0])
	}
	if got[1] != 1 {
		t.Errorf("frame 1 = %v, want 1", got[1])
	}
	if !math.IsInf(got[2], 1) {
		t.Errorf("frame 2 = %v, want +Inf", got[2])
	}
}

func TestComponentSeries(t *testing.T) {
	frames := [][]vecmath.ThreeVector{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}
	got := ComponentSeries(frames, 1, 2)
	if len(got) != 2 || got[0] != 6 || got[1] != 12 {
		t.Errorf("ComponentSeries = %v, want [6 12]", got)
	}
	if got := ComponentSeries(frames, 5, 0); len(got) != 0 {
		t.Errorf("missing particle should give empty series, got %v", got)
	}
}

func TestPlotSeries(t *testing.T) {
	if got := PlotSeries(nil, "empty", 40, 5); got != "" {
		t.Errorf("empty series should render nothing, got %q", got)
	}

	data := make([]float64, 200)
	for i := range data {
		data[i] = math.Sin(float64(i) / 20)
	}
	out := PlotSeries(data, "energy", 40, 5)
	if !strings.Contains(out, "energy") {
		t.Errorf("plot missing caption:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < 5 {
		t.Errorf("plot has %d lines, want at least 5", lines)
	}
}

func TestSummary(t *testing.T) {
	out := Summary("binary", []Field{
		{Label: "steps", Value: "100"},
		{Label: "energy drift", Value: FormatValue(1.5e-9)},
	})
	for _, want := range []string{"binary", "steps", "100", "energy drift", "1.5000e-09"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSeparator(t *testing.T) {
	tests := []struct {
		width, dashes int
	}{
		{20, 14},
		{7, 1},
		{2, 0},
	}
	for _, tt := range tests {
		out := Separator(tt.width)
		if !strings.Contains(out, "◆") {
			t.Errorf("Separator(%d) = %q, missing diamond", tt.width, out)
		}
		if got := strings.Count(out, "─"); got != tt.dashes {
			t.Errorf("Separator(%d) has %d dashes, want %d", tt.width, got, tt.dashes)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.25, "1.25"},
		{123456, "123456"},
		{2.5e7, "2.5000e+07"},
		{-4e-5, "-4.0000e-05"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSparkline(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	out := Sparkline(values, 20)

	glyphs := 0
	for _, r := range out {
		if r >= '▁' && r <= '█' {
			glyphs++
		}
	}
	if glyphs != 20 {
		t.Errorf("sparkline has %d glyphs, want 20", glyphs)
	}
	if !strings.ContainsRune(out, '▁') || !strings.ContainsRune(out, '█') {
		t.Errorf("sparkline should span the full range: %q", out)
	}

	if got := Sparkline(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
}
