package synth

import (
	m "github.com/cwbudde/algo-shortfft/internal/math"
	"github.com/cwbudde/algo-shortfft/internal/phase"
)

// DefaultPrec is the working precision (in bits) for coefficient evaluation
// when binding to the hardware complex types. It sits far above float64's 53
// mantissa bits so that recursive twiddle reductions never see accumulated
// rounding error.
const DefaultPrec = 192

// Options configures synthesis.
type Options struct {
	// Inverse selects conjugate phases. The bound program additionally
	// scales outputs by 1/N.
	Inverse bool

	// Prec is the working precision for coefficient evaluation.
	// Zero means DefaultPrec.
	Prec uint

	// NoFolding disables lowering of trivial phases to sign flips and
	// rotations; every coefficient becomes a plain multiply with an exact
	// constant instead. The lowering is an optimization, not an
	// approximation: programs built either way compute equal results,
	// differing at most in the sign of zero components. Exercised by tests.
	NoFolding bool
}

// builder accumulates instructions during one synthesis run. Slot indices
// are instruction indices; operands always point at earlier instructions, so
// the emitted program is trivially in dependency order.
type builder struct {
	opts   Options
	prec   uint
	instrs []Instr
	coeffs []phase.Coeff
	index  map[[2]int]int // normalized fraction -> coefficient table slot
}

// Synthesize builds the straight-line DFT program for length n. The result
// depends only on (n, opts): repeated synthesis yields an identical program,
// which is what makes redundant concurrent specialization harmless.
// n must be >= 0; the caller validates lengths before synthesis.
func Synthesize(n int, opts Options) *Blueprint {
	prec := opts.Prec
	if prec == 0 {
		prec = DefaultPrec
	}

	b := &builder{
		opts:  opts,
		prec:  prec,
		index: make(map[[2]int]int),
	}

	in := make([]int, n)
	for i := range n {
		in[i] = b.emit(OpLoad, i, 0)
	}

	out := b.synth(in)

	radix := 0
	if n >= 2 {
		radix = m.SmallestPrimeFactor(n)
	}

	return &Blueprint{
		N:       n,
		Inverse: opts.Inverse,
		Instrs:  b.instrs,
		Coeffs:  b.coeffs,
		Out:     out,
		Radix:   radix,
	}
}

// emit appends one instruction and returns its slot index.
func (b *builder) emit(op Op, a, c int) int {
	b.instrs = append(b.instrs, Instr{Op: op, A: a, B: c})

	return len(b.instrs) - 1
}

// synth transforms the sequence of input slots and returns the output slots
// in DFT order. Recursion happens only here, at synthesis time; the emitted
// program is flat.
func (b *builder) synth(in []int) []int {
	n := len(in)

	switch n {
	case 0:
		return nil
	case 1:
		// The load emitted at entry already moved the value into a slot.
		return []int{in[0]}
	}

	n1 := m.SmallestPrimeFactor(n)
	if n1 == n {
		return b.direct(in)
	}

	return b.cooleyTukey(in, n1, n/n1)
}

// direct emits the O(n^2) DFT for prime n:
//
//	out[k] = sum_i e^(-2*pi*i * i*k/n) * in[i]
//
// Each term substitutes the free operation for its phase where one exists.
func (b *builder) direct(in []int) []int {
	n := len(in)
	out := make([]int, n)

	for k := range n {
		acc := in[0] // phase 0 term: coefficient is exactly 1
		for i := 1; i < n; i++ {
			acc = b.accumulate(acc, in[i], i*k, n)
		}

		out[k] = acc
	}

	return out
}

// cooleyTukey emits one decimation-in-time decomposition level: n1 interleaved
// first-stage transforms of size n2, twiddle multiplies between stages, and
// n2 second-stage transforms of size n1. The recombination is pure slot
// relabeling: output k = j + c*n2 takes the second-stage result for group j
// at position c (for radix 2 this is the classic butterfly split into
// outputs k and k+n/2).
func (b *builder) cooleyTukey(in []int, n1, n2 int) []int {
	n := n1 * n2

	// Stage 1: transform the n1 stride-n1 subsequences.
	stage1 := make([][]int, n1)

	for c := range n1 {
		seq := make([]int, n2)
		for j := range n2 {
			seq[j] = in[c+j*n1]
		}

		stage1[c] = b.synth(seq)
	}

	// Twiddle and stage 2, one output group per first-stage frequency j.
	out := make([]int, n)

	for j := range n2 {
		group := make([]int, n1)
		for c := range n1 {
			group[c] = b.applyPhase(stage1[c][j], c*j, n)
		}

		stage2 := b.synth(group)
		for c := range n1 {
			out[j+c*n2] = stage2[c]
		}
	}

	return out
}

// accumulate returns a slot holding slots[acc] + phase(num/den)*slots[s].
// Trivial phases fold into the accumulation itself (add, subtract, or a
// rotation followed by an add); only generic phases cost a multiply.
func (b *builder) accumulate(acc, s, num, den int) int {
	c := b.eval(num, den)

	switch c.Kind {
	case phase.One:
		return b.emit(OpAdd, acc, s)
	case phase.NegOne:
		return b.emit(OpSub, acc, s)
	case phase.NegI:
		return b.emit(OpAdd, acc, b.emit(OpRotNeg, s, 0))
	case phase.PosI:
		return b.emit(OpAdd, acc, b.emit(OpRotPos, s, 0))
	default:
		return b.emit(OpAdd, acc, b.emit(OpMul, s, b.coeff(num, den, c)))
	}
}

// applyPhase returns a slot holding phase(num/den)*slots[s]. A phase of one
// returns s unchanged: no instruction is emitted.
func (b *builder) applyPhase(s, num, den int) int {
	c := b.eval(num, den)

	switch c.Kind {
	case phase.One:
		return s
	case phase.NegOne:
		return b.emit(OpNeg, s, 0)
	case phase.NegI:
		return b.emit(OpRotNeg, s, 0)
	case phase.PosI:
		return b.emit(OpRotPos, s, 0)
	default:
		return b.emit(OpMul, s, b.coeff(num, den, c))
	}
}

// eval evaluates the phase for num/den turns, conjugating for inverse
// transforms. With NoFolding set, trivial kinds are materialized as exact
// generic constants so that every phase costs a real multiply.
func (b *builder) eval(num, den int) phase.Coeff {
	if b.opts.Inverse {
		num = -num
	}

	c := phase.Eval(b.prec, num, den)
	if b.opts.NoFolding && c.Kind != phase.Generic {
		re, im := c.Value(b.prec)

		return phase.Coeff{Kind: phase.Generic, Re: re, Im: im}
	}

	return c
}

// coeff interns the coefficient for the normalized fraction num/den and
// returns its table index. Interning keys on the normalized fraction, so the
// table order is determined by first encounter and is reproducible.
func (b *builder) coeff(num, den int, c phase.Coeff) int {
	if b.opts.Inverse {
		num = -num
	}

	nn, nd := phase.Normalize(num, den)

	key := [2]int{nn, nd}
	if idx, ok := b.index[key]; ok {
		return idx
	}

	b.coeffs = append(b.coeffs, c)
	idx := len(b.coeffs) - 1
	b.index[key] = idx

	return idx
}
