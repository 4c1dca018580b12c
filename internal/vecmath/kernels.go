package vecmath

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a Vector can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// The kernels below work on plain slices so the fixed-size types can share
// them through x[:].

func length[T Scalar](x []T) float64 {
	sum := 0.0
	for _, v := range x {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// pNorm applies math.Pow to the raw component, so negative components with
// odd or fractional p give NaN.
func pNorm[T Scalar](x []T, p float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += math.Pow(float64(v), p)
	}
	return math.Pow(sum, 1/p)
}

func maxNorm[T Scalar](x []T) T {
	if len(x) == 0 {
		return 0
	}
	m := x[0]
	for _, v := range x[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func distance[T Scalar](x, y []T) float64 {
	sum := 0.0
	for i := range x {
		d := float64(x[i]) - float64(y[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func dot[T Scalar](x, y []T) float64 {
	res := 0.0
	for i := range x {
		res += float64(x[i]) * float64(y[i])
	}
	return res
}

func equal[T Scalar](x, y []T) bool {
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func format[T Scalar](x []T) string {
	var sb strings.Builder
	sb.WriteString("Vector(")
	for i, v := range x {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatScalar(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

func formatScalar[T Scalar](v T) string {
	one := T(1)
	if one/2 != 0 {
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
