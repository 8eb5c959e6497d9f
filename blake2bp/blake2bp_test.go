package blake2bp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oconnor663/blake2-simd/blake2b"
)

func TestEmptyAndShort(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("a"), []byte("abc")} {
		d := Hash(in)
		assert.Equal(t, blake2b.MaxDigestSize, d.Len())
	}
}

func TestDigestLengthBounds(t *testing.T) {
	short, err := NewParams().DigestLength(16).Hash([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 16, short.Len())

	_, err = NewParams().DigestLength(0).Hash(nil)
	assert.ErrorIs(t, err, blake2b.ErrParameterOutOfRange)

	_, err = NewParams().DigestLength(65).Hash(nil)
	assert.ErrorIs(t, err, blake2b.ErrParameterOutOfRange)
}

// TestTreeAgreement rebuilds the BLAKE2bp tree by hand — four leaves fed
// round-robin BlockSize chunks, then a root absorbing the concatenated
// leaf digests — and checks it matches Hash byte for byte. This pins
// down the interleaving contract Hash relies on internally.
func TestTreeAgreement(t *testing.T) {
	sizes := []int{0, 1, 17, blake2b.BlockSize - 1, blake2b.BlockSize,
		blake2b.BlockSize + 1, 4 * blake2b.BlockSize, 9*blake2b.BlockSize + 33}

	for _, n := range sizes {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*7 + 1)
		}

		leafInput := make([][]byte, Fanout)
		for start := 0; start < len(data); start += blake2b.BlockSize {
			end := start + blake2b.BlockSize
			if end > len(data) {
				end = len(data)
			}
			leaf := (start / blake2b.BlockSize) % Fanout
			leafInput[leaf] = append(leafInput[leaf], data[start:end]...)
		}

		ref := &Params{digestLength: blake2b.MaxDigestSize}
		root, err := ref.rootParams().New()
		require.NoError(t, err)
		for i := 0; i < Fanout; i++ {
			leaf, err := ref.leafParams(i).New()
			require.NoError(t, err)
			require.NoError(t, leaf.Update(leafInput[i]))
			d := leaf.Finalize()
			require.NoError(t, root.Update(d.Bytes()))
		}
		want := root.Finalize()

		got, err := NewParams().Hash(data)
		require.NoError(t, err)
		assert.Equal(t, want.Hex(), got.Hex(), "size %d", n)
	}
}

// TestDifferentKeysDiffer is a sanity check that the key actually
// participates in every leaf and the root, not just one of them.
func TestDifferentKeysDiffer(t *testing.T) {
	data := []byte("some moderately long message for keyed BLAKE2bp")
	a, err := NewParams().Key([]byte("key-one")).Hash(data)
	require.NoError(t, err)
	b, err := NewParams().Key([]byte("key-two")).Hash(data)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hex(), b.Hex())
}
