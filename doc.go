// Package blake2 is the root of a BLAKE2 hashing library. The hash
// implementations themselves live in the blake2b and blake2s
// subpackages; blake2bp and blake2sp layer the fixed-fanout tree modes
// on top of them. This package holds no code of its own.
//
// blake2b is tuned for 64-bit platforms and produces digests of 1 to 64
// bytes. blake2s is tuned for 8- to 32-bit platforms and produces
// digests of 1 to 32 bytes. blake2bp and blake2sp trade a fixed tree
// shape (4 and 8 leaves respectively) for higher throughput on wide
// SIMD hardware, by advancing their leaves in lockstep through the
// many-state engine in each of blake2b/blake2s.
package blake2
