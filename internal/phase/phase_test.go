package phase

import (
	"math"
	"math/cmplx"
	"testing"
)

const testPrec = 96

// value rounds a coefficient to complex128 regardless of kind.
func value(c Coeff) complex128 {
	re, im := c.Value(testPrec)

	r, _ := re.Float64()
	i, _ := im.Float64()

	return complex(r, i)
}

func TestEval_TrivialKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		num, den int
		want     Kind
	}{
		{0, 1, One},
		{0, 7, One},
		{4, 4, One},
		{-3, 3, One},
		{1, 4, NegI},
		{2, 4, NegOne},
		{1, 2, NegOne},
		{3, 4, PosI},
		{5, 4, NegI},
		{-1, 4, PosI},
		{-1, 2, NegOne},
		{6, 8, PosI},
		{100, 200, NegOne},
	}

	for _, c := range cases {
		got := Eval(testPrec, c.num, c.den)
		if got.Kind != c.want {
			t.Errorf("Eval(%d/%d).Kind = %v, want %v", c.num, c.den, got.Kind, c.want)
		}
	}
}

func TestEval_MatchesExp(t *testing.T) {
	t.Parallel()

	for _, den := range []int{3, 5, 7, 8, 9, 12, 16, 40, 360} {
		for num := -den; num <= 2*den; num++ {
			got := value(Eval(testPrec, num, den))
			want := cmplx.Exp(complex(0, -2*math.Pi*float64(num)/float64(den)))

			if cmplx.Abs(got-want) > 1e-14 {
				t.Errorf("Eval(%d/%d) = %v, want %v", num, den, got, want)
			}
		}
	}
}

func TestEval_EighthTurnClosedForm(t *testing.T) {
	t.Parallel()

	c := Eval(testPrec, 1, 8)
	if c.Kind != Generic {
		t.Fatalf("Eval(1/8).Kind = %v, want Generic", c.Kind)
	}

	got := value(c)
	s := math.Sqrt(0.5)

	if math.Abs(real(got)-s) > 1e-16 || math.Abs(imag(got)+s) > 1e-16 {
		t.Errorf("Eval(1/8) = %v, want (%v, %v)", got, s, -s)
	}
}

func TestEval_ReductionsAreExact(t *testing.T) {
	t.Parallel()

	// 3/8 = 1/4 + 1/8 must reduce onto the eighth-turn closed form rather
	// than the generic trig path: e^(-3*pi*i/4) has real and imaginary
	// parts both exactly -sqrt(1/2).
	c := Eval(testPrec, 3, 8)
	if c.Kind != Generic {
		t.Fatalf("Eval(3/8).Kind = %v, want Generic", c.Kind)
	}

	if c.Re.Cmp(c.Im) != 0 {
		t.Errorf("Eval(3/8): re = %s, im = %s, want exactly equal",
			c.Re.Text('g', 10), c.Im.Text('g', 10))
	}

	if c.Re.Sign() >= 0 {
		t.Errorf("Eval(3/8): re = %s, want negative", c.Re.Text('g', 10))
	}
}

func TestValue_TrivialKindsExact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind Kind
		want complex128
	}{
		{One, 1},
		{NegOne, -1},
		{NegI, -1i},
		{PosI, 1i},
	}

	for _, c := range cases {
		got := value(Coeff{Kind: c.kind})
		if got != c.want {
			t.Errorf("Value(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		num, den     int
		wantN, wantD int
	}{
		{0, 5, 0, 1},
		{5, 5, 0, 1},
		{6, 8, 3, 4},
		{-1, 4, 3, 4},
		{9, 4, 1, 4},
		{-7, 4, 1, 4},
		{2, 6, 1, 3},
	}

	for _, c := range cases {
		n, d := Normalize(c.num, c.den)
		if n != c.wantN || d != c.wantD {
			t.Errorf("Normalize(%d, %d) = %d/%d, want %d/%d", c.num, c.den, n, d, c.wantN, c.wantD)
		}
	}
}

func TestEval_Deterministic(t *testing.T) {
	t.Parallel()

	a := Eval(testPrec, 2, 7)
	b := Eval(testPrec, 2, 7)

	if a.Kind != b.Kind || a.Re.Cmp(b.Re) != 0 || a.Im.Cmp(b.Im) != 0 {
		t.Error("repeated evaluation produced different coefficients")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	kinds := []Kind{One, NegOne, NegI, PosI, Generic}
	for _, k := range kinds {
		if k.String() == "unknown" {
			t.Errorf("Kind(%d).String() = unknown", k)
		}
	}
}
