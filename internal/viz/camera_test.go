package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/bps/internal/vecmath"
)

const tol = 1e-12

func near(a, b vecmath.ThreeVector) bool {
	return a.DistanceTo(b) < tol
}

func TestCameraTurnMatchesRotate(t *testing.T) {
	axis := vecmath.NewThreeVector(1, 2, 3)
	angle := 0.7
	p := vecmath.NewThreeVector(-2, 0.5, 4)

	cam := NewCamera()
	cam.Turn(axis, angle)

	if got, want := cam.View(p), p.Rotated(axis, angle); !near(got, want) {
		t.Errorf("View = %v, want %v", got, want)
	}
}

func TestCameraTurnsCompose(t *testing.T) {
	cam := NewCamera()
	cam.Turn(vecmath.NewThreeVector(0, 0, 1), math.Pi/2)
	cam.Turn(vecmath.NewThreeVector(1, 0, 0), math.Pi/2)

	got := cam.View(vecmath.NewThreeVector(1, 0, 0))
	if want := vecmath.NewThreeVector(0, 0, 1); !near(got, want) {
		t.Errorf("View = %v, want %v", got, want)
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera()
	tests := []struct {
		name   string
		p      vecmath.ThreeVector
		x, y   int
		inside bool
	}{
		{"origin", vecmath.NewThreeVector(0, 0, 0), 20, 20, true},
		{"right edge", vecmath.NewThreeVector(1, 0, 0), 40, 20, true},
		{"top edge", vecmath.NewThreeVector(0, 1, 0), 20, 0, true},
		{"depth ignored", vecmath.NewThreeVector(0, 0, 5), 20, 20, true},
		{"outside", vecmath.NewThreeVector(2, 0, 0), 60, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, _, ok := cam.Project(tt.p, 41, 41)
			if x != tt.x || y != tt.y || ok != tt.inside {
				t.Errorf("Project(%v) = (%d, %d, %v), want (%d, %d, %v)", tt.p, x, y, ok, tt.x, tt.y, tt.inside)
			}
		})
	}
}

func TestCameraPerspective(t *testing.T) {
	cam := NewCamera()
	cam.Distance = 10

	if _, _, _, ok := cam.Project(vecmath.NewThreeVector(0, 0, 10), 41, 41); ok {
		t.Error("point at the eye should not be visible")
	}

	closeX, _, _, _ := cam.Project(vecmath.NewThreeVector(0.5, 0, 5), 41, 41)
	farX, _, _, _ := cam.Project(vecmath.NewThreeVector(0.5, 0, -5), 41, 41)
	if closeX <= farX {
		t.Errorf("closer point should project further from centre: close=%d far=%d", closeX, farX)
	}
}

func TestCameraNaNNotVisible(t *testing.T) {
	cam := NewCamera()
	if _, _, _, ok := cam.Project(vecmath.NewThreeVector(math.NaN(), 0, 0), 10, 10); ok {
		t.Error("NaN position should not be visible")
	}
}

func TestCameraFit(t *testing.T) {
	cam := NewCamera()
	cam.Fit([]vecmath.ThreeVector{{3, 0, 0}, {0, -4, 9}})
	if math.Abs(cam.Extent-4.4) > tol {
		t.Errorf("Extent = %v, want 4.4", cam.Extent)
	}

	cam.Fit(nil)
	if cam.Extent != 1.1 {
		t.Errorf("empty fit Extent = %v, want 1.1", cam.Extent)
	}
}

func TestSnapshot(t *testing.T) {
	frames := [][]vecmath.ThreeVector{
		{{-1, 0, 0}, {1, 0, 0}},
		{{-1, 0.5, 0}, {1, -0.5, 0}},
		{{-0.5, 1, 0}, {0.5, -1, 0}},
	}
	out := Snapshot(frames, nil, 20, 10)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if strings.Trim(out, "\u2800\n") == "" {
		t.Error("snapshot is blank")
	}
}
