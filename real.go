package shortfft

// Real-input adaptation: real element types promote to the complex type of
// the same precision, then dispatch onto the cached complex transform. No
// arithmetic of consequence happens here.

// TransformReal32 computes the DFT of a real float32 input, promoted to
// complex64.
func TransformReal32(src []float32) ([]complex64, error) {
	in := make([]complex64, len(src))
	for i, v := range src {
		in[i] = complex(v, 0)
	}

	return Transform(in)
}

// TransformReal64 computes the DFT of a real float64 input, promoted to
// complex128.
func TransformReal64(src []float64) ([]complex128, error) {
	in := make([]complex128, len(src))
	for i, v := range src {
		in[i] = complex(v, 0)
	}

	return Transform(in)
}
