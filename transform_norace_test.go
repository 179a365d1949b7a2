//go:build !race

package shortfft

import "testing"

// TestTransformInto_ZeroAllocations verifies that executing an already
// specialized transform allocates nothing: scratch comes from the kernel's
// pool and outputs go to caller storage.
//
// Excluded from race builds because the race detector's instrumentation
// introduces allocations that don't exist in normal builds.
//
//nolint:paralleltest
func TestTransformInto_ZeroAllocations(t *testing.T) {
	// Note: t.Parallel() cannot be used here because testing.AllocsPerRun
	// panics when called during a parallel test.
	n := 24

	src := randomComplex128(n, 1)
	dst := make([]complex128, n)

	// Warm up: trigger synthesis and populate the scratch pool.
	for range 5 {
		if err := TransformInto(dst, src); err != nil {
			t.Fatal(err)
		}

		if err := InverseInto(dst, src); err != nil {
			t.Fatal(err)
		}
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = TransformInto(dst, src)
	})

	if allocs > 0 {
		t.Errorf("TransformInto allocated %f times per run, want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_ = InverseInto(dst, src)
	})

	if allocs > 0 {
		t.Errorf("InverseInto allocated %f times per run, want 0", allocs)
	}
}
