package blake2sp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oconnor663/blake2-simd/blake2s"
)

func TestEmptyAndShort(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("a"), []byte("abc")} {
		d := Hash(in)
		assert.Equal(t, blake2s.MaxDigestSize, d.Len())
	}
}

func TestDigestLengthBounds(t *testing.T) {
	short, err := NewParams().DigestLength(16).Hash([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 16, short.Len())

	_, err = NewParams().DigestLength(0).Hash(nil)
	assert.ErrorIs(t, err, blake2s.ErrParameterOutOfRange)

	_, err = NewParams().DigestLength(33).Hash(nil)
	assert.ErrorIs(t, err, blake2s.ErrParameterOutOfRange)
}

// TestTreeAgreement rebuilds the BLAKE2sp tree by hand and checks it
// matches Hash byte for byte, pinning down the round-robin interleaving
// contract across all 8 leaves.
func TestTreeAgreement(t *testing.T) {
	sizes := []int{0, 1, 17, blake2s.BlockSize - 1, blake2s.BlockSize,
		blake2s.BlockSize + 1, 8 * blake2s.BlockSize, 19*blake2s.BlockSize + 5}

	for _, n := range sizes {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*13 + 3)
		}

		leafInput := make([][]byte, Fanout)
		for start := 0; start < len(data); start += blake2s.BlockSize {
			end := start + blake2s.BlockSize
			if end > len(data) {
				end = len(data)
			}
			leaf := (start / blake2s.BlockSize) % Fanout
			leafInput[leaf] = append(leafInput[leaf], data[start:end]...)
		}

		ref := &Params{digestLength: blake2s.MaxDigestSize}
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

func TestDifferentKeysDiffer(t *testing.T) {
	data := []byte("some moderately long message for keyed BLAKE2sp")
	a, err := NewParams().Key([]byte("key-one")).Hash(data)
	require.NoError(t, err)
	b, err := NewParams().Key([]byte("key-two")).Hash(data)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hex(), b.Hex())
}
