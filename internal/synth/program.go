// Package synth builds straight-line DFT programs: loop-free, branch-free
// single-assignment instruction sequences specialized for one transform
// length. Synthesis happens once per length; the resulting Blueprint is
// element-type independent and is bound to a concrete complex type (rounding
// coefficients exactly once) before execution.
package synth

import (
	"math/big"

	"github.com/cwbudde/algo-shortfft/internal/fftypes"
	"github.com/cwbudde/algo-shortfft/internal/phase"
)

// Op is a straight-line program operation. Each instruction assigns one
// fresh slot; slot i holds the result of instruction i and is never
// reassigned.
type Op uint8

const (
	// OpLoad assigns input element A to the slot.
	OpLoad Op = iota
	// OpAdd assigns slots[A] + slots[B].
	OpAdd
	// OpSub assigns slots[A] - slots[B].
	OpSub
	// OpNeg assigns -slots[A].
	OpNeg
	// OpRotNeg assigns slots[A] * (-i).
	OpRotNeg
	// OpRotPos assigns slots[A] * (+i).
	OpRotPos
	// OpMul assigns coeffs[B] * slots[A].
	OpMul
)

// Instr is one single-assignment statement. A and B are slot indices, except
// that A indexes the input for OpLoad and B indexes the coefficient table
// for OpMul.
type Instr struct {
	Op Op
	A  int
	B  int
}

// Blueprint is a synthesized straight-line DFT program, independent of the
// element type it will execute over. Instruction operands only ever refer to
// earlier slots, so a single forward pass over Instrs evaluates the program.
// Blueprints are immutable once synthesized and safe for concurrent use.
type Blueprint struct {
	N       int
	Inverse bool
	Instrs  []Instr
	Coeffs  []phase.Coeff // generic coefficients at working precision
	Out     []int         // slot index per output position, canonical order
	Radix   int           // top-level split factor; 0 for n <= 1, n if prime
}

// OpCounts summarizes the operation mix of a blueprint. Useful both as plan
// metadata and for verifying that trivial phases were lowered to free
// operations (e.g. a length-4 transform must report zero multiplies).
type OpCounts struct {
	Loads     int
	Adds      int
	Subs      int
	Negations int
	Rotations int
	Muls      int
}

// Counts tallies the blueprint's instructions by operation.
func (bp *Blueprint) Counts() OpCounts {
	var c OpCounts

	for _, ins := range bp.Instrs {
		switch ins.Op {
		case OpLoad:
			c.Loads++
		case OpAdd:
			c.Adds++
		case OpSub:
			c.Subs++
		case OpNeg:
			c.Negations++
		case OpRotNeg, OpRotPos:
			c.Rotations++
		case OpMul:
			c.Muls++
		}
	}

	return c
}

// Slots returns the number of slots the program uses (one per instruction).
func (bp *Blueprint) Slots() int {
	return len(bp.Instrs)
}

// Program is a blueprint bound to a concrete element type: coefficients are
// rounded to T and the inverse 1/N scale, if any, is resolved. Programs are
// immutable and safe for concurrent execution with per-call scratch.
type Program[T fftypes.Complex] struct {
	n      int
	instrs []Instr
	coeffs []T
	out    []int
	scale  float64 // applied to outputs; 1 means no scaling
}

// Bind rounds bp's coefficients to T and returns an executable program.
// This is the single rounding step from working precision to the target
// type; no further rounding of constants occurs at execution time.
func Bind[T fftypes.Complex](bp *Blueprint) *Program[T] {
	coeffs := make([]T, len(bp.Coeffs))
	for i, c := range bp.Coeffs {
		coeffs[i] = complexFromBig[T](c.Re, c.Im)
	}

	scale := 1.0
	if bp.Inverse && bp.N > 0 {
		scale = 1.0 / float64(bp.N)
	}

	return &Program[T]{
		n:      bp.N,
		instrs: bp.Instrs,
		coeffs: coeffs,
		out:    bp.Out,
		scale:  scale,
	}
}

// Len returns the transform length.
func (p *Program[T]) Len() int {
	return p.n
}

// Slots returns the scratch length required by Run.
func (p *Program[T]) Slots() int {
	return len(p.instrs)
}

// Run executes the program: src supplies the N inputs, dst receives the N
// outputs, and scratch must have at least Slots() elements. The caller
// guarantees lengths; Run performs no validation and no allocation.
func (p *Program[T]) Run(dst, src, scratch []T) {
	switch d := any(dst).(type) {
	case []complex64:
		run64(p64(p), d, any(src).([]complex64), any(scratch).([]complex64))
	case []complex128:
		run128(p128(p), d, any(src).([]complex128), any(scratch).([]complex128))
	}
}

// p64 and p128 recover the concrete-typed program for the executor loops.
// The assertions cannot fail: T is constrained to exactly these two types.
func p64[T fftypes.Complex](p *Program[T]) *Program[complex64] {
	return any(p).(*Program[complex64])
}

func p128[T fftypes.Complex](p *Program[T]) *Program[complex128] {
	return any(p).(*Program[complex128])
}

func run64(p *Program[complex64], dst, src, scratch []complex64) {
	for i, ins := range p.instrs {
		switch ins.Op {
		case OpLoad:
			scratch[i] = src[ins.A]
		case OpAdd:
			scratch[i] = scratch[ins.A] + scratch[ins.B]
		case OpSub:
			scratch[i] = scratch[ins.A] - scratch[ins.B]
		case OpNeg:
			scratch[i] = -scratch[ins.A]
		case OpRotNeg:
			v := scratch[ins.A]
			scratch[i] = complex(imag(v), -real(v))
		case OpRotPos:
			v := scratch[ins.A]
			scratch[i] = complex(-imag(v), real(v))
		case OpMul:
			scratch[i] = p.coeffs[ins.B] * scratch[ins.A]
		}
	}

	if p.scale == 1 {
		for j, s := range p.out {
			dst[j] = scratch[s]
		}

		return
	}

	factor := complex(float32(p.scale), 0)
	for j, s := range p.out {
		dst[j] = scratch[s] * factor
	}
}

func run128(p *Program[complex128], dst, src, scratch []complex128) {
	for i, ins := range p.instrs {
		switch ins.Op {
		case OpLoad:
			scratch[i] = src[ins.A]
		case OpAdd:
			scratch[i] = scratch[ins.A] + scratch[ins.B]
		case OpSub:
			scratch[i] = scratch[ins.A] - scratch[ins.B]
		case OpNeg:
			scratch[i] = -scratch[ins.A]
		case OpRotNeg:
			v := scratch[ins.A]
			scratch[i] = complex(imag(v), -real(v))
		case OpRotPos:
			v := scratch[ins.A]
			scratch[i] = complex(-imag(v), real(v))
		case OpMul:
			scratch[i] = p.coeffs[ins.B] * scratch[ins.A]
		}
	}

	if p.scale == 1 {
		for j, s := range p.out {
			dst[j] = scratch[s]
		}

		return
	}

	factor := complex(p.scale, 0)
	for j, s := range p.out {
		dst[j] = scratch[s] * factor
	}
}

// complexFromBig rounds a working-precision value to the element type T.
func complexFromBig[T fftypes.Complex](re, im *big.Float) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		r, _ := re.Float32()
		i, _ := im.Float32()

		return any(complex(r, i)).(T)
	default:
		r, _ := re.Float64()
		i, _ := im.Float64()

		return any(complex(r, i)).(T)
	}
}
