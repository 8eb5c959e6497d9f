// Package blake2s implements the BLAKE2s cryptographic hash function:
// streaming and one-shot hashing, full tree-hashing parameterization,
// and a batched many-state engine that advances several independent
// hashes in lockstep. It is the 32-bit sibling of blake2b, tuned for
// 8- to 32-bit platforms.
//
// BLAKE2sp (the fixed 8-leaf tree built from this package) lives in the
// sibling blake2sp package.
package blake2s

// Hash is a one-shot convenience for hashing data with the default
// parameters (sequential mode, full 32-byte digest, no key).
func Hash(data []byte) Digest {
	d, err := NewParams().Hash(data)
	if err != nil {
		panic(err)
	}
	return d
}

// Sum appends the BLAKE2s digest of data to b and returns the extended
// slice.
func Sum(b, data []byte) []byte {
	d := Hash(data)
	return append(b, d.Bytes()...)
}
