// Package fftypes holds the shared type constraints used across the module.
package fftypes

// Complex is the type constraint for complex element types supported by the
// synthesized transforms. No tilde: named types would break the precision
// dispatch, which type-asserts on the underlying type.
type Complex interface {
	complex64 | complex128
}

// Float is the type constraint for real-valued input element types. Real
// inputs are promoted to the complex type of the same precision before
// transforming.
type Float interface {
	float32 | float64
}
