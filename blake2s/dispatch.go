package blake2s

import (
	"github.com/oconnor663/blake2-simd/internal/cpufeature"
)

// Implementation names the compressor backend chosen once per process.
type Implementation int

const (
	Portable Implementation = Implementation(cpufeature.Portable)
	SSE41    Implementation = Implementation(cpufeature.SSE41)
	AVX2     Implementation = Implementation(cpufeature.AVX2)
	NEON     Implementation = Implementation(cpufeature.NEON)
)

func (i Implementation) String() string {
	return cpufeature.Tier(i).String()
}

// multiWidthFor reports the widest compressMulti lane count BLAKE2s
// supports for a given vector tier — double blake2b's, since a 32-bit
// word packs twice as densely per vector register.
func multiWidthFor(impl Implementation) int {
	switch impl {
	case AVX2:
		return 16
	case SSE41, NEON:
		return 8
	default:
		return 1
	}
}

// dispatch returns the process-wide implementation choice, probing on
// first use via the shared cpufeature package.
func dispatch() Implementation {
	return Implementation(cpufeature.Detect())
}

// compress1 runs a single-state compression through whichever
// implementation the dispatcher selected.
func compress1(h *[8]uint32, block *[BlockSize]byte, t0, t1, f0, f1 uint32) {
	if dispatch() == Portable {
		compressGeneric(h, block, t0, t1, f0, f1)
		return
	}
	compressSIMD(h, block, t0, t1, f0, f1)
}

// multiWidth returns the widest lane count compressMulti should be
// called with under the active dispatch decision.
func multiWidth() int {
	return multiWidthFor(dispatch())
}
