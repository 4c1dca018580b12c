package vecmath

// Indexable is any source a Vector can be filled from.
type Indexable[T Scalar] interface {
	At(i int) T
}

// Vector is an n-dimensional vector over T. The dimension is fixed when the
// vector is created and never changes. Every method that returns a Vector
// returns fresh storage; use Clone to copy one explicitly.
type Vector[T Scalar] struct {
	x []T
}

// New returns a zero vector of dimension n.
func New[T Scalar](n int) Vector[T] {
	return Vector[T]{x: make([]T, n)}
}

// FromSlice returns a vector holding a copy of xs.
func FromSlice[T Scalar](xs []T) Vector[T] {
	v := New[T](len(xs))
	copy(v.x, xs)
	return v
}

// FromIndexable reads components [0, n) from src. Reading past the end of
// src is src's problem.
func FromIndexable[T Scalar](n int, src Indexable[T]) Vector[T] {
	v := New[T](n)
	for i := range v.x {
		v.x[i] = src.At(i)
	}
	return v
}

func (v Vector[T]) Size() int { return len(v.x) }

func (v Vector[T]) At(i int) T { return v.x[i] }

func (v Vector[T]) Set(i int, f T) { v.x[i] = f }

// Slice returns a copy of the components.
func (v Vector[T]) Slice() []T {
	out := make([]T, len(v.x))
	copy(out, v.x)
	return out
}

func (v Vector[T]) Clone() Vector[T] {
	return FromSlice(v.x)
}

// Assign overwrites v with the first v.Size() components of src.
func (v Vector[T]) Assign(src Indexable[T]) {
	for i := range v.x {
		v.x[i] = src.At(i)
	}
}

func (v Vector[T]) AddInPlace(w Vector[T]) {
	mustMatch("add", len(v.x), len(w.x))
	for i := range v.x {
		v.x[i] += w.x[i]
	}
}

func (v Vector[T]) SubInPlace(w Vector[T]) {
	mustMatch("sub", len(v.x), len(w.x))
	for i := range v.x {
		v.x[i] -= w.x[i]
	}
}

func (v Vector[T]) ScaleInPlace(f T) {
	for i := range v.x {
		v.x[i] *= f
	}
}

func (v Vector[T]) DivInPlace(f T) {
	for i := range v.x {
		v.x[i] /= f
	}
}

// Length returns the Euclidean norm.
func (v Vector[T]) Length() float64 { return length(v.x) }

// PNorm returns (Σ x_i^p)^(1/p). Components are not made absolute first.
func (v Vector[T]) PNorm(p float64) float64 { return pNorm(v.x, p) }

// MaxNorm returns the largest component value, or zero for an empty vector.
func (v Vector[T]) MaxNorm() T { return maxNorm(v.x) }

// DistanceTo returns the Euclidean distance between v and w.
func (v Vector[T]) DistanceTo(w Vector[T]) float64 {
	mustMatch("distance", len(v.x), len(w.x))
	return distance(v.x, w.x)
}

// Normalize divides v by its length in place. A zero vector becomes NaN.
func (v Vector[T]) Normalize() {
	l := v.Length()
	for i := range v.x {
		v.x[i] = T(float64(v.x[i]) / l)
	}
}

func (v Vector[T]) Normalized() Vector[T] {
	w := v.Clone()
	w.Normalize()
	return w
}

func (v Vector[T]) Pos() Vector[T] { return v.Clone() }

func (v Vector[T]) Neg() Vector[T] {
	w := New[T](len(v.x))
	for i, f := range v.x {
		w.x[i] = -f
	}
	return w
}

func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	u := v.Clone()
	u.AddInPlace(w)
	return u
}

func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	u := v.Clone()
	u.SubInPlace(w)
	return u
}

func (v Vector[T]) Scale(f T) Vector[T] {
	u := v.Clone()
	u.ScaleInPlace(f)
	return u
}

func (v Vector[T]) Div(f T) Vector[T] {
	u := v.Clone()
	u.DivInPlace(f)
	return u
}

// Dot returns the scalar product of v and w.
func (v Vector[T]) Dot(w Vector[T]) float64 {
	mustMatch("dot", len(v.x), len(w.x))
	return dot(v.x, w.x)
}

// Equal reports exact component-wise equality. Vectors of different
// dimension are never equal.
func (v Vector[T]) Equal(w Vector[T]) bool {
	return len(v.x) == len(w.x) && equal(v.x, w.x)
}

func (v Vector[T]) String() string { return format(v.x) }
