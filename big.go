package shortfft

import (
	"github.com/cwbudde/algo-shortfft/bignum"
	"github.com/cwbudde/algo-shortfft/internal/synth"
)

// coeffGuardBits is the margin the synthesis working precision keeps above
// an arbitrary-precision kernel's element precision.
const coeffGuardBits = 64

// BigKernel is a DFT specialized for one length over arbitrary-precision
// complex elements. It executes the same straight-line program as Kernel,
// interpreted over bignum.Complex at a caller-chosen precision, and exists
// for validation and reference use. Immutable and safe for concurrent use.
type BigKernel struct {
	n       int
	prec    uint
	forward *synth.BigProgram
	inverse *synth.BigProgram
}

// NewBig synthesizes an arbitrary-precision kernel for length n with
// prec-bit elements. Coefficients are evaluated with coeffGuardBits of
// headroom above prec and rounded once.
//
// Returns ErrInvalidLength if n < 0 and ErrInvalidPrecision if prec lies
// outside [bignum.MinPrec, bignum.MaxPrec].
func NewBig(n int, prec uint) (*BigKernel, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}

	if prec < bignum.MinPrec || prec > bignum.MaxPrec {
		return nil, ErrInvalidPrecision
	}

	work := prec + coeffGuardBits

	fwd := synth.Synthesize(n, synth.Options{Prec: work})
	inv := synth.Synthesize(n, synth.Options{Prec: work, Inverse: true})

	return &BigKernel{
		n:       n,
		prec:    prec,
		forward: synth.BindBig(fwd, prec),
		inverse: synth.BindBig(inv, prec),
	}, nil
}

// Len returns the transform length.
func (k *BigKernel) Len() int {
	return k.n
}

// Prec returns the element precision in bits.
func (k *BigKernel) Prec() uint {
	return k.prec
}

// Forward computes the forward DFT of src into dst. Inputs are promoted to
// the kernel's precision on load; outputs are freshly allocated elements.
//
// Returns ErrNilSlice if dst or src is nil (unless the length is zero) and
// ErrLengthMismatch on length disagreement.
func (k *BigKernel) Forward(dst, src []*bignum.Complex) error {
	if err := k.validate(dst, src); err != nil {
		return err
	}

	if k.n > 0 {
		k.forward.Run(dst, src)
	}

	return nil
}

// Inverse computes the inverse DFT of src into dst, scaled by 1/N.
func (k *BigKernel) Inverse(dst, src []*bignum.Complex) error {
	if err := k.validate(dst, src); err != nil {
		return err
	}

	if k.n > 0 {
		k.inverse.Run(dst, src)
	}

	return nil
}

func (k *BigKernel) validate(dst, src []*bignum.Complex) error {
	if k.n > 0 && (dst == nil || src == nil) {
		return ErrNilSlice
	}

	if len(dst) != k.n || len(src) != k.n {
		return ErrLengthMismatch
	}

	return nil
}
