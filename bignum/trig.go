package bignum

import (
	"math/big"
	"sync"
)

// guardBits is the extra precision carried by the series evaluations below
// so that the final rounding to the requested precision is exact in practice.
const guardBits = 32

var piCache sync.Map // map[uint]*big.Float, immutable once stored

// Pi returns pi at the given precision. Values are computed once per
// precision with Machin's formula and cached; callers must not mutate the
// returned value.
func Pi(prec uint) *big.Float {
	if v, ok := piCache.Load(prec); ok {
		return v.(*big.Float)
	}

	pi := computePi(prec)
	actual, _ := piCache.LoadOrStore(prec, pi)

	return actual.(*big.Float)
}

// computePi evaluates Machin's formula pi = 16*atan(1/5) - 4*atan(1/239).
func computePi(prec uint) *big.Float {
	work := prec + guardBits

	a := atanRecip(5, work)
	b := atanRecip(239, work)

	a.Mul(a, big.NewFloat(16).SetPrec(work))
	b.Mul(b, big.NewFloat(4).SetPrec(work))

	pi := a.Sub(a, b)

	return pi.SetPrec(prec)
}

// atanRecip evaluates atan(1/m) for an integer m >= 2 via the alternating
// series sum_k (-1)^k / ((2k+1) m^(2k+1)). Each term shrinks by m^2, so the
// series needs roughly prec / log2(m^2) terms.
func atanRecip(m int64, prec uint) *big.Float {
	sum := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec).Quo(
		new(big.Float).SetPrec(prec).SetInt64(1),
		new(big.Float).SetPrec(prec).SetInt64(m),
	)

	m2 := new(big.Float).SetPrec(prec).SetInt64(m * m)
	eps := epsilon(prec)
	tmp := new(big.Float).SetPrec(prec)

	for k := int64(0); ; k++ {
		tmp.Quo(term, new(big.Float).SetPrec(prec).SetInt64(2*k+1))

		if k%2 == 0 {
			sum.Add(sum, tmp)
		} else {
			sum.Sub(sum, tmp)
		}

		term.Quo(term, m2)
		if term.Cmp(eps) < 0 {
			break
		}
	}

	return sum
}

// SinCos returns sin(x) and cos(x) at the given precision for 0 <= x < pi/2.
// Taylor series suffice on this range; the phase evaluator reduces every
// angle into it before calling.
func SinCos(x *big.Float, prec uint) (sin, cos *big.Float) {
	work := prec + guardBits

	xw := new(big.Float).SetPrec(work).Set(x)
	x2 := new(big.Float).SetPrec(work).Mul(xw, xw)
	eps := epsilon(work)

	// sin(x) = x - x^3/3! + x^5/5! - ...
	sin = new(big.Float).SetPrec(work).Set(xw)
	term := new(big.Float).SetPrec(work).Set(xw)

	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, new(big.Float).SetPrec(work).SetInt64((2*k)*(2*k+1)))

		if k%2 == 1 {
			sin.Sub(sin, term)
		} else {
			sin.Add(sin, term)
		}

		if term.Cmp(eps) < 0 {
			break
		}
	}

	// cos(x) = 1 - x^2/2! + x^4/4! - ...
	cos = new(big.Float).SetPrec(work).SetInt64(1)
	term = new(big.Float).SetPrec(work).SetInt64(1)

	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, new(big.Float).SetPrec(work).SetInt64((2*k-1)*(2*k)))

		if k%2 == 1 {
			cos.Sub(cos, term)
		} else {
			cos.Add(cos, term)
		}

		if term.Cmp(eps) < 0 {
			break
		}
	}

	return sin.SetPrec(prec), cos.SetPrec(prec)
}

// SqrtHalf returns sqrt(1/2) at the given precision.
func SqrtHalf(prec uint) *big.Float {
	half := new(big.Float).SetPrec(prec + guardBits).SetFloat64(0.5)

	return half.Sqrt(half).SetPrec(prec)
}

// epsilon returns 2^-(prec+8), the series truncation threshold.
func epsilon(prec uint) *big.Float {
	return new(big.Float).SetMantExp(big.NewFloat(1), -int(prec)-8)
}
