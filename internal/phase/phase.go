// Package phase evaluates complex roots of unity for rational rotation
// fractions. Eval(prec, num, den) stands for e^(-2*pi*i * num/den) and
// classifies the algebraically trivial multipliers (1, -1, -i, +i) so the
// synthesis engine can emit sign flips and rotations instead of complex
// multiplies. Non-trivial values are computed once at a working precision
// well above every supported target type and rounded only when a program
// is bound to a concrete element type.
package phase

import (
	"math/big"

	"github.com/cwbudde/algo-shortfft/bignum"
)

// Kind classifies a phase coefficient.
type Kind uint8

const (
	// One means multiplication is the identity: no instruction needed.
	One Kind = iota
	// NegOne means a sign flip.
	NegOne
	// NegI means a -90 degree rotation (swap parts, negate one).
	NegI
	// PosI means a +90 degree rotation.
	PosI
	// Generic means a true complex multiplication by Re+Im*i.
	Generic
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case One:
		return "one"
	case NegOne:
		return "neg"
	case NegI:
		return "rot-"
	case PosI:
		return "rot+"
	case Generic:
		return "mul"
	default:
		return "unknown"
	}
}

// Coeff is an evaluated phase coefficient. Re and Im are set only when
// Kind == Generic; the four trivial kinds carry no numeric payload because
// the synthesis engine lowers them to free operations.
type Coeff struct {
	Kind Kind
	Re   *big.Float
	Im   *big.Float
}

// Normalize reduces num/den to the canonical fraction in [0, 1) in lowest
// terms. den must be positive. Two rotation fractions denote the same phase
// iff their normalized forms are equal, which is what coefficient
// deduplication keys on.
func Normalize(num, den int) (int, int) {
	num %= den
	if num < 0 {
		num += den
	}

	if num == 0 {
		return 0, 1
	}

	g := gcd(num, den)

	return num / g, den / g
}

// Eval returns the coefficient e^(-2*pi*i * num/den) evaluated at the given
// working precision. den must be positive.
func Eval(prec uint, num, den int) Coeff {
	num, den = Normalize(num, den)

	// k == 0: multiplicative identity.
	if num == 0 {
		return Coeff{Kind: One}
	}

	// k in [1/2, 1): e^(-2*pi*i*k) = -e^(-2*pi*i*(k - 1/2)).
	if 2*num >= den {
		return negate(Eval(prec, 2*num-den, 2*den))
	}

	// k in [1/4, 1/2): e^(-2*pi*i*k) = -i * e^(-2*pi*i*(k - 1/4)).
	if 4*num >= den {
		return mulNegI(Eval(prec, 4*num-den, 4*den))
	}

	// k == 1/8: closed form (1-i)*sqrt(1/2), the one irrational angle below
	// a quarter turn common enough to bypass the trig path.
	if 8*num == den {
		s := bignum.SqrtHalf(prec)

		return Coeff{
			Kind: Generic,
			Re:   s,
			Im:   new(big.Float).Neg(s),
		}
	}

	// Generic angle in (0, 1/4): e^(-i*theta) = cos(theta) - i*sin(theta)
	// with theta = 2*pi*k in (0, pi/2).
	work := prec + 16
	theta := new(big.Float).SetPrec(work).Mul(bignum.Pi(work), ratio(2*num, den, work))
	sin, cos := bignum.SinCos(theta, prec)

	return Coeff{
		Kind: Generic,
		Re:   cos,
		Im:   new(big.Float).Neg(sin),
	}
}

// Value returns the numeric payload of c regardless of kind, materializing
// the trivial kinds as exact constants. Used when the caller wants a plain
// multiply for every coefficient. The trivial-kind values are exact in every
// binary floating-point format, so the multiplies lose nothing over the
// lowered operations.
func (c Coeff) Value(prec uint) (re, im *big.Float) {
	switch c.Kind {
	case One:
		return big.NewFloat(1).SetPrec(prec), new(big.Float).SetPrec(prec)
	case NegOne:
		return big.NewFloat(-1).SetPrec(prec), new(big.Float).SetPrec(prec)
	case NegI:
		return new(big.Float).SetPrec(prec), big.NewFloat(-1).SetPrec(prec)
	case PosI:
		return new(big.Float).SetPrec(prec), big.NewFloat(1).SetPrec(prec)
	default:
		return c.Re, c.Im
	}
}

// negate returns -c.
func negate(c Coeff) Coeff {
	switch c.Kind {
	case One:
		return Coeff{Kind: NegOne}
	case NegOne:
		return Coeff{Kind: One}
	case NegI:
		return Coeff{Kind: PosI}
	case PosI:
		return Coeff{Kind: NegI}
	default:
		return Coeff{
			Kind: Generic,
			Re:   new(big.Float).Neg(c.Re),
			Im:   new(big.Float).Neg(c.Im),
		}
	}
}

// mulNegI returns c * (-i): (a+bi)(-i) = b - ai.
func mulNegI(c Coeff) Coeff {
	switch c.Kind {
	case One:
		return Coeff{Kind: NegI}
	case NegI:
		return Coeff{Kind: NegOne}
	case NegOne:
		return Coeff{Kind: PosI}
	case PosI:
		return Coeff{Kind: One}
	default:
		return Coeff{
			Kind: Generic,
			Re:   new(big.Float).Set(c.Im),
			Im:   new(big.Float).Neg(c.Re),
		}
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ratio returns num/den as a big.Float at the given precision.
func ratio(num, den int, prec uint) *big.Float {
	n := new(big.Float).SetPrec(prec).SetInt64(int64(num))
	d := new(big.Float).SetPrec(prec).SetInt64(int64(den))

	return n.Quo(n, d)
}
