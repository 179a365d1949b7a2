package math

// SmallestPrimeFactor returns the least prime dividing n.
// If n is prime, n itself is returned. n must be >= 2; the transform
// base cases (n <= 1) are handled before factorization is consulted.
//
// Trial division is sufficient here: synthesized transforms target small
// lengths (up to a few thousand), so n never gets large enough for the
// O(sqrt n) scan to matter.
func SmallestPrimeFactor(n int) int {
	if n%2 == 0 {
		return 2
	}

	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}

	return n
}

// IsPrime reports whether n is prime. For n < 2 it returns false.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	return SmallestPrimeFactor(n) == n
}
