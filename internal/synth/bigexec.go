package synth

import (
	"math/big"

	"github.com/cwbudde/algo-shortfft/bignum"
)

// BigProgram is a blueprint bound to the arbitrary-precision element type.
// It exists for validation and reference use; unlike Program it allocates
// freely, since big.Float arithmetic allocates anyway.
type BigProgram struct {
	n      int
	prec   uint
	instrs []Instr
	coeffs []*bignum.Complex
	out    []int
	scale  *big.Float // nil when no output scaling applies
}

// BindBig rounds bp's coefficients to the given precision and returns an
// executable arbitrary-precision program. The blueprint must have been
// synthesized at a working precision at or above prec for the single-rounding
// guarantee to hold.
func BindBig(bp *Blueprint, prec uint) *BigProgram {
	coeffs := make([]*bignum.Complex, len(bp.Coeffs))
	for i, c := range bp.Coeffs {
		coeffs[i] = bignum.FromFloats(c.Re, c.Im, prec)
	}

	var scale *big.Float
	if bp.Inverse && bp.N > 0 {
		scale = new(big.Float).SetPrec(prec).Quo(
			new(big.Float).SetPrec(prec).SetInt64(1),
			new(big.Float).SetPrec(prec).SetInt64(int64(bp.N)),
		)
	}

	return &BigProgram{
		n:      bp.N,
		prec:   prec,
		instrs: bp.Instrs,
		coeffs: coeffs,
		out:    bp.Out,
		scale:  scale,
	}
}

// Len returns the transform length.
func (p *BigProgram) Len() int {
	return p.n
}

// Prec returns the element precision in bits.
func (p *BigProgram) Prec() uint {
	return p.prec
}

// Run executes the program. src supplies the N inputs (promoted to the
// program's precision on load) and dst receives N freshly allocated outputs.
// The caller guarantees both slices have length N.
func (p *BigProgram) Run(dst, src []*bignum.Complex) {
	slots := make([]*bignum.Complex, len(p.instrs))

	for i, ins := range p.instrs {
		switch ins.Op {
		case OpLoad:
			slots[i] = bignum.FromFloats(src[ins.A].Re, src[ins.A].Im, p.prec)
		case OpAdd:
			slots[i] = slots[ins.A].Add(slots[ins.B])
		case OpSub:
			slots[i] = slots[ins.A].Sub(slots[ins.B])
		case OpNeg:
			slots[i] = slots[ins.A].Neg()
		case OpRotNeg:
			slots[i] = slots[ins.A].MulNegI()
		case OpRotPos:
			slots[i] = slots[ins.A].MulPosI()
		case OpMul:
			slots[i] = p.coeffs[ins.B].Mul(slots[ins.A])
		}
	}

	for j, s := range p.out {
		v := slots[s]
		if p.scale != nil {
			v = v.Scale(p.scale)
		}

		dst[j] = v.Copy()
	}
}
