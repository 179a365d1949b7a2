package shortfft

import "github.com/cwbudde/algo-shortfft/internal/fftypes"

// Complex is the type constraint for complex element types supported by the
// synthesized transforms. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is the type constraint for real-valued input types accepted by the
// promotion helpers. The canonical definition is in internal/fftypes.
type Float = fftypes.Float
