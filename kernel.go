package shortfft

import (
	"sync"

	"github.com/cwbudde/algo-shortfft/internal/synth"
)

// Kernel is a synthesized DFT specialized for one (element type, length)
// pair. A Kernel is immutable after construction and safe for concurrent
// use; executions share no mutable state beyond a pooled scratch buffer.
type Kernel[T Complex] struct {
	n       int
	forward *synth.Program[T]
	inverse *synth.Program[T]
	meta    Meta
	scratch sync.Pool // *[]T sized for the larger of the two programs
}

// Meta describes the synthesized program backing a kernel. The operation
// counts refer to the forward program; the inverse program has the same
// shape with conjugated coefficients.
type Meta struct {
	// N is the transform length.
	N int

	// Radix is the smallest prime factor chosen for the top-level
	// decomposition: 0 for N <= 1, N itself when N is prime.
	Radix int

	// Slots is the number of single-assignment intermediates.
	Slots int

	// Loads, Adds, Subs, Negations, Rotations and Muls count the program's
	// instructions by kind. Negations and Rotations are multiplications by
	// -1 and ±i lowered to free operations; Muls counts only true complex
	// multiplies.
	Loads     int
	Adds      int
	Subs      int
	Negations int
	Rotations int
	Muls      int

	// Coefficients is the number of distinct non-trivial twiddle constants.
	Coefficients int
}

// New synthesizes a fresh kernel for length n. Returns ErrInvalidLength if
// n < 0.
//
// Most callers should use Transform or TransformInto, which cache kernels
// per (type, length). New exists for callers that want explicit ownership,
// e.g. to avoid touching the process-wide cache.
func New[T Complex](n int) (*Kernel[T], error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}

	fwd := synth.Synthesize(n, synth.Options{})
	inv := synth.Synthesize(n, synth.Options{Inverse: true})

	counts := fwd.Counts()

	k := &Kernel[T]{
		n:       n,
		forward: synth.Bind[T](fwd),
		inverse: synth.Bind[T](inv),
		meta: Meta{
			N:            n,
			Radix:        fwd.Radix,
			Slots:        fwd.Slots(),
			Loads:        counts.Loads,
			Adds:         counts.Adds,
			Subs:         counts.Subs,
			Negations:    counts.Negations,
			Rotations:    counts.Rotations,
			Muls:         counts.Muls,
			Coefficients: len(fwd.Coeffs),
		},
	}

	slots := k.forward.Slots()
	if s := k.inverse.Slots(); s > slots {
		slots = s
	}

	k.scratch.New = func() any {
		buf := make([]T, slots)

		return &buf
	}

	return k, nil
}

// Len returns the transform length.
func (k *Kernel[T]) Len() int {
	return k.n
}

// Meta returns the program metadata for the kernel.
func (k *Kernel[T]) Meta() Meta {
	return k.meta
}

// Forward computes the forward DFT of src into dst.
//
// Returns ErrNilSlice if dst or src is nil (unless the length is zero) and
// ErrLengthMismatch if either slice's length differs from Len(). dst and src
// may alias: all inputs are read into scratch before any output is written.
func (k *Kernel[T]) Forward(dst, src []T) error {
	if err := k.validate(dst, src); err != nil {
		return err
	}

	k.run(k.forward, dst, src)

	return nil
}

// Inverse computes the inverse DFT of src into dst, scaled by 1/N so that
// Inverse(Forward(x)) == x up to rounding.
//
// Validation matches Forward.
func (k *Kernel[T]) Inverse(dst, src []T) error {
	if err := k.validate(dst, src); err != nil {
		return err
	}

	k.run(k.inverse, dst, src)

	return nil
}

func (k *Kernel[T]) run(p *synth.Program[T], dst, src []T) {
	if k.n == 0 {
		return
	}

	buf := k.scratch.Get().(*[]T)
	p.Run(dst, src, *buf)
	k.scratch.Put(buf)
}

func (k *Kernel[T]) validate(dst, src []T) error {
	if k.n > 0 && (dst == nil || src == nil) {
		return ErrNilSlice
	}

	if len(dst) != k.n || len(src) != k.n {
		return ErrLengthMismatch
	}

	return nil
}
