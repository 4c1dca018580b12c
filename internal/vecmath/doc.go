// Package vecmath provides the linear algebra used by the particle
// simulator: a generic n-dimensional [Vector], the 3-D [ThreeVector] and the
// [Quaternion] used to rotate it.
//
// [ThreeVector] and [Quaternion] are fixed-size arrays with value semantics.
// Their norms, distances and dot products run through the same generic
// kernels as [Vector], so the three types agree on every shared operation.
//
// # Degenerate input
//
// Nothing in this package guards against numerically degenerate input.
// Normalizing a zero vector, taking the angle to a zero vector or rotating
// about a zero axis yields NaN or ±Inf components:
//
//	v := vecmath.ThreeVector{}
//	n := v.Normalized() // Vector(NaN, NaN, NaN)
//
// Callers that need to exclude such configurations do so before calling in.
// Out-of-range indices and mismatched dimensions panic.
package vecmath
