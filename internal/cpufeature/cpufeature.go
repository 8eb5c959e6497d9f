// Package cpufeature runs the one-time runtime CPU probe shared by
// blake2b and blake2s's dispatchers. Both packages need the same
// vector-extension tier; this package is where that decision is made
// exactly once per process and cached.
package cpufeature

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Tier names the vector extension the process-wide dispatcher settled
// on. It says nothing about lane width — blake2b and blake2s pack a
// different number of lanes per tier, since a 32-bit word is half a
// 64-bit one in the same register, so each package turns a Tier into
// its own multi-state width.
type Tier int

const (
	Portable Tier = iota
	SSE41
	AVX2
	NEON
)

func (t Tier) String() string {
	switch t {
	case Portable:
		return "portable"
	case SSE41:
		return "sse41"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	once    sync.Once
	current Tier
)

// Detect returns the process-wide vector tier, probing on first call.
// The probe is idempotent: once a tier is chosen it is never revisited,
// matching BLAKE2's monotonic, single-threaded dispatch contract.
func Detect() Tier {
	once.Do(func() {
		switch {
		case cpu.X86.HasAVX2:
			current = AVX2
		case cpu.X86.HasSSE41:
			current = SSE41
		case cpu.ARM64.HasASIMD:
			current = NEON
		default:
			current = Portable
		}
	})
	return current
}
