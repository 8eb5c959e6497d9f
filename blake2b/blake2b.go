// Package blake2b implements the BLAKE2b cryptographic hash function:
// streaming and one-shot hashing, full tree-hashing parameterization
// (salt, personalization, keys, and the node_offset/node_depth/fanout
// fields used to build custom tree modes), and a batched many-state
// engine that advances several independent hashes in lockstep.
//
// BLAKE2bp (the fixed 4-leaf tree built from this package) lives in the
// sibling blake2bp package.
package blake2b

// Hash is a one-shot convenience for hashing data with the default
// parameters (sequential mode, full 64-byte digest, no key).
func Hash(data []byte) Digest {
	d, err := NewParams().Hash(data)
	if err != nil {
		// NewParams()'s defaults are always valid; Hash can only fail
		// on a Params error.
		panic(err)
	}
	return d
}

// Sum appends the BLAKE2b digest of data to b and returns the extended
// slice, mirroring the hash.Hash convention used throughout the
// standard library's crypto packages.
func Sum(b, data []byte) []byte {
	d := Hash(data)
	return append(b, d.Bytes()...)
}
