// Package shortfft synthesizes specialized discrete Fourier transforms for
// small fixed lengths.
//
// For each (element type, length) pair the package builds, once, a
// straight-line program: a loop-free, branch-free sequence of
// single-assignment arithmetic statements computing the N-point DFT. The
// program is cached and re-executed on every subsequent call with the same
// pair, so the per-call cost is exactly the arithmetic named in the program,
// with no planning, no data-dependent control flow, and no heap allocation.
//
// Synthesis applies the Cooley-Tukey decomposition recursively, always
// splitting off the smallest prime factor, and falls back to the direct
// O(N^2) DFT for prime lengths. Twiddle coefficients are evaluated at a
// working precision far above the target type and rounded exactly once;
// multiplications by 1, -1 and ±i are lowered to free operations (identity,
// sign flip, component swap) instead of complex multiplies.
//
// The package targets very small transforms, roughly N below a thousand,
// embedded in surrounding numerical code. It is not a general FFT library:
// there is no cache blocking, no multi-dimensional planning, and no internal
// parallelism, and cost degrades for lengths with large prime factors.
//
// # Usage
//
//	out, err := shortfft.Transform([]complex128{1, 0, 0, 0})
//	// out == [1, 1, 1, 1]
//
// Callers that control allocation obtain a kernel once and supply their own
// storage:
//
//	k, _ := shortfft.New[complex64](12)
//	err := k.Forward(dst, src)
//
// Real-valued inputs promote to the complex type of the same precision via
// TransformReal32 and TransformReal64. An arbitrary-precision path over
// bignum.Complex is available through NewBig for validation and reference
// use.
package shortfft
