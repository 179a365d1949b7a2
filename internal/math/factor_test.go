package math

import "testing"

func TestSmallestPrimeFactor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, want int
	}{
		{2, 2},
		{3, 3},
		{4, 2},
		{9, 3},
		{15, 3},
		{25, 5},
		{35, 5},
		{49, 7},
		{97, 97},
		{121, 11},
		{1001, 7},
		{2310, 2},
		{3989, 3989}, // prime
	}

	for _, c := range cases {
		if got := SmallestPrimeFactor(c.n); got != c.want {
			t.Errorf("SmallestPrimeFactor(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := []int{2, 3, 5, 7, 11, 13, 97, 101, 997}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}

	composites := []int{-7, 0, 1, 4, 9, 15, 100, 1001}
	for _, c := range composites {
		if IsPrime(c) {
			t.Errorf("IsPrime(%d) = true, want false", c)
		}
	}
}
