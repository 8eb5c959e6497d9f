// Package blake2bp implements BLAKE2bp, BLAKE2b's fixed 4-leaf
// tree-hashing mode. It contains no compression logic of its own: leaves
// and root are ordinary blake2b.State values built with the tree-hashing
// fields from RFC 7693, and leaves are advanced in lockstep through
// blake2b.UpdateMany so the same multi-state engine that serves
// blake2b.HashMany serves this fixed tree.
package blake2bp

import (
	"github.com/oconnor663/blake2-simd/blake2b"
)

// Fanout is the fixed number of leaves in a BLAKE2bp tree.
const Fanout = 4

const depth = 2

// Params configures a BLAKE2bp hash. Unlike blake2b.Params, the
// tree-shape fields (fanout, depth, inner_hash_length) are not
// settable: they are fixed by the BLAKE2bp layout. Only digest length
// and key vary.
type Params struct {
	digestLength int
	key          []byte
	err          error
}

// NewParams returns a Params for a default, full-width BLAKE2bp hash.
func NewParams() *Params {
	return &Params{digestLength: blake2b.MaxDigestSize}
}

// DigestLength sets the final output length in bytes, 1..=64. This only
// affects the root node; each leaf always emits a full 64-byte inner
// digest, per RFC 7693's BLAKE2bp layout.
func (p *Params) DigestLength(n int) *Params {
	if n < 1 || n > blake2b.MaxDigestSize {
		p.err = blake2b.ErrParameterOutOfRange
		return p
	}
	p.digestLength = n
	return p
}

// Key sets the secret key shared by every leaf and the root.
func (p *Params) Key(key []byte) *Params {
	if len(key) > blake2b.MaxKeySize {
		p.err = blake2b.ErrParameterOutOfRange
		return p
	}
	p.key = key
	return p
}

func (p *Params) leafParams(index int) *blake2b.Params {
	return blake2b.NewParams().
		DigestLength(blake2b.MaxDigestSize).
		Key(p.key).
		Fanout(Fanout).
		MaxDepth(depth).
		InnerHashLength(blake2b.MaxDigestSize).
		NodeOffset(uint64(index)).
		NodeDepth(0).
		LastNode(index == Fanout-1)
}

func (p *Params) rootParams() *blake2b.Params {
	return blake2b.NewParams().
		DigestLength(p.digestLength).
		Key(p.key).
		Fanout(Fanout).
		MaxDepth(depth).
		InnerHashLength(blake2b.MaxDigestSize).
		NodeOffset(0).
		NodeDepth(1).
		LastNode(true)
}

// Hash computes the BLAKE2bp digest of data under p. Leaf i absorbs
// bytes at positions {i*blocksize, ..., (i+1)*blocksize-1,
// (i+Fanout)*blocksize, ...} — successive blocks assigned round-robin
// to leaves — and all four leaves are advanced through one
// blake2b.UpdateMany call so they run in lockstep across the
// multi-state compressor.
func (p *Params) Hash(data []byte) (blake2b.Digest, error) {
	if p.err != nil {
		return blake2b.Digest{}, p.err
	}

	leaves := make([]*blake2b.State, Fanout)
	leafInput := make([][]byte, Fanout)
	for i := range leaves {
		st, err := p.leafParams(i).New()
		if err != nil {
			return blake2b.Digest{}, err
		}
		leaves[i] = st
	}

	for start := 0; start < len(data); start += blake2b.BlockSize {
		end := start + blake2b.BlockSize
		if end > len(data) {
			end = len(data)
		}
		leaf := (start / blake2b.BlockSize) % Fanout
		leafInput[leaf] = append(leafInput[leaf], data[start:end]...)
	}

	jobs := make([]blake2b.Job, Fanout)
	for i := range leaves {
		jobs[i] = blake2b.Job{State: leaves[i], Input: leafInput[i]}
	}
	if err := blake2b.UpdateMany(jobs); err != nil {
		return blake2b.Digest{}, err
	}

	root, err := p.rootParams().New()
	if err != nil {
		return blake2b.Digest{}, err
	}
	for _, leaf := range leaves {
		d := leaf.Finalize()
		if err := root.Update(d.Bytes()); err != nil {
			return blake2b.Digest{}, err
		}
	}
	return root.Finalize(), nil
}

// Hash is a one-shot convenience for hashing data with default
// BLAKE2bp parameters (full 64-byte digest, no key).
func Hash(data []byte) blake2b.Digest {
	d, err := NewParams().Hash(data)
	if err != nil {
		panic(err)
	}
	return d
}

// Sum appends the BLAKE2bp digest of data to b.
func Sum(b, data []byte) []byte {
	d := Hash(data)
	return append(b, d.Bytes()...)
}
