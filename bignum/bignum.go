// Package bignum provides an arbitrary-precision complex number type built
// on math/big, together with the constant-precision trigonometric helpers
// needed to evaluate roots of unity well above hardware float precision.
//
// The type exists for two reasons: transform coefficients are evaluated at a
// working precision comfortably above the target element type before being
// rounded exactly once, and the module offers an arbitrary-precision
// transform path for validation and reference use.
package bignum

import "math/big"

// Precision bounds accepted by the arbitrary-precision transform path.
// MaxPrec caps the cost of the series evaluations behind coefficient
// synthesis; validation use never needs more.
const (
	MinPrec = 24
	MaxPrec = 1024
)

// Complex is a complex number with arbitrary-precision real and imaginary
// parts. The zero value is not usable; construct values with New or
// FromComplex128.
type Complex struct {
	Re *big.Float
	Im *big.Float
}

// New returns 0+0i at the given precision.
func New(prec uint) *Complex {
	return &Complex{
		Re: new(big.Float).SetPrec(prec),
		Im: new(big.Float).SetPrec(prec),
	}
}

// FromComplex128 returns v as a Complex at the given precision.
func FromComplex128(v complex128, prec uint) *Complex {
	return &Complex{
		Re: new(big.Float).SetPrec(prec).SetFloat64(real(v)),
		Im: new(big.Float).SetPrec(prec).SetFloat64(imag(v)),
	}
}

// FromFloats returns re+im·i, copying both parts at the given precision.
func FromFloats(re, im *big.Float, prec uint) *Complex {
	return &Complex{
		Re: new(big.Float).SetPrec(prec).Set(re),
		Im: new(big.Float).SetPrec(prec).Set(im),
	}
}

// Copy returns an independent copy of z at its current precision.
func (z *Complex) Copy() *Complex {
	return &Complex{
		Re: new(big.Float).Copy(z.Re),
		Im: new(big.Float).Copy(z.Im),
	}
}

// Prec returns the precision of the real part (both parts always match).
func (z *Complex) Prec() uint {
	return z.Re.Prec()
}

// Complex128 rounds z to a complex128.
func (z *Complex) Complex128() complex128 {
	re, _ := z.Re.Float64()
	im, _ := z.Im.Float64()

	return complex(re, im)
}

// Add returns z + w at z's precision.
func (z *Complex) Add(w *Complex) *Complex {
	prec := z.Prec()

	return &Complex{
		Re: new(big.Float).SetPrec(prec).Add(z.Re, w.Re),
		Im: new(big.Float).SetPrec(prec).Add(z.Im, w.Im),
	}
}

// Sub returns z - w at z's precision.
func (z *Complex) Sub(w *Complex) *Complex {
	prec := z.Prec()

	return &Complex{
		Re: new(big.Float).SetPrec(prec).Sub(z.Re, w.Re),
		Im: new(big.Float).SetPrec(prec).Sub(z.Im, w.Im),
	}
}

// Mul returns z * w at z's precision.
func (z *Complex) Mul(w *Complex) *Complex {
	prec := z.Prec()

	ac := new(big.Float).SetPrec(prec).Mul(z.Re, w.Re)
	bd := new(big.Float).SetPrec(prec).Mul(z.Im, w.Im)
	ad := new(big.Float).SetPrec(prec).Mul(z.Re, w.Im)
	bc := new(big.Float).SetPrec(prec).Mul(z.Im, w.Re)

	return &Complex{
		Re: ac.Sub(ac, bd),
		Im: ad.Add(ad, bc),
	}
}

// Neg returns -z.
func (z *Complex) Neg() *Complex {
	return &Complex{
		Re: new(big.Float).Neg(z.Re),
		Im: new(big.Float).Neg(z.Im),
	}
}

// MulNegI returns z * (-i), a -90 degree rotation: (a+bi)(-i) = b - ai.
func (z *Complex) MulNegI() *Complex {
	return &Complex{
		Re: new(big.Float).Copy(z.Im),
		Im: new(big.Float).Neg(z.Re),
	}
}

// MulPosI returns z * (+i), a +90 degree rotation: (a+bi)(i) = -b + ai.
func (z *Complex) MulPosI() *Complex {
	return &Complex{
		Re: new(big.Float).Neg(z.Im),
		Im: new(big.Float).Copy(z.Re),
	}
}

// Conj returns the complex conjugate of z.
func (z *Complex) Conj() *Complex {
	return &Complex{
		Re: new(big.Float).Copy(z.Re),
		Im: new(big.Float).Neg(z.Im),
	}
}

// Scale returns z * f for a real factor f, at z's precision.
func (z *Complex) Scale(f *big.Float) *Complex {
	prec := z.Prec()

	return &Complex{
		Re: new(big.Float).SetPrec(prec).Mul(z.Re, f),
		Im: new(big.Float).SetPrec(prec).Mul(z.Im, f),
	}
}

// AbsSquared returns |z|^2 at z's precision.
func (z *Complex) AbsSquared() *big.Float {
	prec := z.Prec()

	r2 := new(big.Float).SetPrec(prec).Mul(z.Re, z.Re)
	i2 := new(big.Float).SetPrec(prec).Mul(z.Im, z.Im)

	return r2.Add(r2, i2)
}

// String formats z as "(re + im·i)" using big.Float's default formatting.
func (z *Complex) String() string {
	return "(" + z.Re.Text('g', 12) + " + " + z.Im.Text('g', 12) + "i)"
}
