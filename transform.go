package shortfft

import "sync"

// kernelCache memoizes kernels by transform length for one element type.
// Lookups of existing entries take no lock; insertion uses LoadOrStore, so
// two goroutines racing on a missing length may both synthesize. Synthesis
// is a pure function of (type, length), so whichever entry wins the store
// is indistinguishable from the loser.
type kernelCache[T Complex] struct {
	m sync.Map // map[int]*Kernel[T]
}

func (c *kernelCache[T]) get(n int) (*Kernel[T], error) {
	if v, ok := c.m.Load(n); ok {
		return v.(*Kernel[T]), nil
	}

	k, err := New[T](n)
	if err != nil {
		return nil, err
	}

	actual, _ := c.m.LoadOrStore(n, k)

	return actual.(*Kernel[T]), nil
}

var (
	kernelCache64  kernelCache[complex64]
	kernelCache128 kernelCache[complex128]
)

// Cached returns the process-wide kernel for (T, n), synthesizing it on
// first use. Entries are never evicted; they are few and cheap relative to
// the repeated execution they save.
func Cached[T Complex](n int) (*Kernel[T], error) {
	var zero T

	switch any(zero).(type) {
	case complex64:
		k, err := kernelCache64.get(n)
		if err != nil {
			return nil, err
		}

		return any(k).(*Kernel[T]), nil
	default:
		k, err := kernelCache128.get(n)
		if err != nil {
			return nil, err
		}

		return any(k).(*Kernel[T]), nil
	}
}

// Transform computes the DFT of src, allocating the result. The length is
// taken from the slice; a nil or empty src yields an empty output. The
// kernel for (T, len(src)) is synthesized on first use and cached.
func Transform[T Complex](src []T) ([]T, error) {
	k, err := Cached[T](len(src))
	if err != nil {
		return nil, err
	}

	dst := make([]T, len(src))
	if err := k.Forward(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// TransformInto computes the DFT of src into caller-provided dst, performing
// no allocation beyond pooled scratch reuse. dst and src must both have the
// same length and may alias.
func TransformInto[T Complex](dst, src []T) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	k, err := Cached[T](len(src))
	if err != nil {
		return err
	}

	return k.Forward(dst, src)
}

// Inverse computes the inverse DFT of src, scaled by 1/N, allocating the
// result.
func Inverse[T Complex](src []T) ([]T, error) {
	k, err := Cached[T](len(src))
	if err != nil {
		return nil, err
	}

	dst := make([]T, len(src))
	if err := k.Inverse(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// InverseInto computes the inverse DFT of src into caller-provided dst.
func InverseInto[T Complex](dst, src []T) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	k, err := Cached[T](len(src))
	if err != nil {
		return err
	}

	return k.Inverse(dst, src)
}
