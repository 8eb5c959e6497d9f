// Package blake2sp implements BLAKE2sp, BLAKE2s's fixed 8-leaf
// tree-hashing mode. Like blake2bp, it is built entirely on the public
// blake2s API: leaves and root are blake2s.State values configured with
// the tree-hashing fields from RFC 7693, and the leaves are advanced in
// lockstep through blake2s.UpdateMany.
package blake2sp

import (
	"github.com/oconnor663/blake2-simd/blake2s"
)

// Fanout is the fixed number of leaves in a BLAKE2sp tree.
const Fanout = 8

const depth = 2

// Params configures a BLAKE2sp hash. The tree-shape fields are fixed;
// only digest length and key vary.
type Params struct {
	digestLength int
	key          []byte
	err          error
}

// NewParams returns a Params for a default, full-width BLAKE2sp hash.
func NewParams() *Params {
	return &Params{digestLength: blake2s.MaxDigestSize}
}

// DigestLength sets the final output length in bytes, 1..=32. Each leaf
// always emits a full 32-byte inner digest regardless of this setting.
func (p *Params) DigestLength(n int) *Params {
	if n < 1 || n > blake2s.MaxDigestSize {
		p.err = blake2s.ErrParameterOutOfRange
		return p
	}
	p.digestLength = n
	return p
}

// Key sets the secret key shared by every leaf and the root.
func (p *Params) Key(key []byte) *Params {
	if len(key) > blake2s.MaxKeySize {
		p.err = blake2s.ErrParameterOutOfRange
		return p
	}
	p.key = key
	return p
}

func (p *Params) leafParams(index int) *blake2s.Params {
	return blake2s.NewParams().
		DigestLength(blake2s.MaxDigestSize).
		Key(p.key).
		Fanout(Fanout).
		MaxDepth(depth).
		InnerHashLength(blake2s.MaxDigestSize).
		NodeOffset(uint64(index)).
		NodeDepth(0).
		LastNode(index == Fanout-1)
}

func (p *Params) rootParams() *blake2s.Params {
	return blake2s.NewParams().
		DigestLength(p.digestLength).
		Key(p.key).
		Fanout(Fanout).
		MaxDepth(depth).
		InnerHashLength(blake2s.MaxDigestSize).
		NodeOffset(0).
		NodeDepth(1).
		LastNode(true)
}

// Hash computes the BLAKE2sp digest of data under p, interleaving
// successive BlockSize chunks round-robin across the 8 leaves and
// advancing all of them through one blake2s.UpdateMany call.
func (p *Params) Hash(data []byte) (blake2s.Digest, error) {
	if p.err != nil {
		return blake2s.Digest{}, p.err
	}

	leaves := make([]*blake2s.State, Fanout)
	leafInput := make([][]byte, Fanout)
	for i := range leaves {
		st, err := p.leafParams(i).New()
		if err != nil {
			return blake2s.Digest{}, err
		}
		leaves[i] = st
	}

	for start := 0; start < len(data); start += blake2s.BlockSize {
		end := start + blake2s.BlockSize
		if end > len(data) {
			end = len(data)
		}
		leaf := (start / blake2s.BlockSize) % Fanout
		leafInput[leaf] = append(leafInput[leaf], data[start:end]...)
	}

	jobs := make([]blake2s.Job, Fanout)
	for i := range leaves {
		jobs[i] = blake2s.Job{State: leaves[i], Input: leafInput[i]}
	}
	if err := blake2s.UpdateMany(jobs); err != nil {
		return blake2s.Digest{}, err
	}

	root, err := p.rootParams().New()
	if err != nil {
		return blake2s.Digest{}, err
	}
	for _, leaf := range leaves {
		d := leaf.Finalize()
		if err := root.Update(d.Bytes()); err != nil {
			return blake2s.Digest{}, err
		}
	}
	return root.Finalize(), nil
}

// Hash is a one-shot convenience for hashing data with default BLAKE2sp
// parameters (full 32-byte digest, no key).
func Hash(data []byte) blake2s.Digest {
	d, err := NewParams().Hash(data)
	if err != nil {
		panic(err)
	}
	return d
}

// Sum appends the BLAKE2sp digest of data to b.
func Sum(b, data []byte) []byte {
	d := Hash(data)
	return append(b, d.Bytes()...)
}
