package blake2b

import (
	"github.com/oconnor663/blake2-simd/internal/cpufeature"
)

// Implementation names the compressor backend chosen once per process.
// It mirrors the shared cpufeature.Tier but is re-typed per package
// since each package turns the same tier into a different multiWidth.
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

// multiWidthFor reports the widest compressMulti lane count BLAKE2b
// supports for a given vector tier.
func multiWidthFor(impl Implementation) int {
	switch impl {
	case AVX2:
		return 8
	case SSE41, NEON:
		return 4
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
func compress1(h *[8]uint64, block *[BlockSize]byte, t0, t1, f0, f1 uint64) {
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
