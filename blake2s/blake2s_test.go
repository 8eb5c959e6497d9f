package blake2s

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardVectors = []struct {
	name string
	in   []byte
	hex  string
}{
	{"empty", nil, "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"},
	{"abc", []byte("abc"), "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
}

func TestStandardVectors(t *testing.T) {
	for _, tc := range standardVectors {
		t.Run(tc.name, func(t *testing.T) {
			d := Hash(tc.in)
			assert.Equal(t, tc.hex, d.Hex())
		})
	}
}

func TestParamBlockLayout(t *testing.T) {
	pb := &paramBlock{
		digestLength: 32,
		keyLength:    0,
		fanout:       1,
		depth:        1,
	}
	raw := pb.marshal()
	assert.Equal(t, byte(32), raw[0])
	assert.Equal(t, byte(1), raw[2])
	assert.Equal(t, byte(1), raw[3])

	h := pb.chainingIV()
	assert.Equal(t, iv0^uint32(0x01010020), h[0])
}

func TestParamsRejectsOutOfRange(t *testing.T) {
	_, err := NewParams().DigestLength(0).New()
	assert.ErrorIs(t, err, ErrParameterOutOfRange)

	_, err = NewParams().DigestLength(33).New()
	assert.ErrorIs(t, err, ErrParameterOutOfRange)

	_, err = NewParams().NodeOffset(MaxNodeOffset + 1).New()
	assert.ErrorIs(t, err, ErrParameterOutOfRange)
}

func TestLengthBounds(t *testing.T) {
	short, err := NewParams().DigestLength(1).Hash([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, 1, short.Len())

	full, err := NewParams().DigestLength(MaxDigestSize).Hash([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, MaxDigestSize, full.Len())
}

func TestChunkingInvariance(t *testing.T) {
	data := make([]byte, 3*BlockSize+17)
	for i := range data {
		data[i] = byte(i * 11)
	}
	want := Hash(data)

	for _, size := range []int{1, 3, 7, BlockSize, BlockSize + 1, 2 * BlockSize} {
		st, err := NewParams().New()
		require.NoError(t, err)
		for off := 0; off < len(data); off += size {
			end := off + size
			if end > len(data) {
				end = len(data)
			}
			require.NoError(t, st.Update(data[off:end]))
		}
		assert.Equal(t, want.Hex(), st.Finalize().Hex(), "chunk size %d", size)
	}
}

func TestHoldLastBlockInvariant(t *testing.T) {
	data := make([]byte, 2*BlockSize)
	st, err := NewParams().New()
	require.NoError(t, err)
	require.NoError(t, st.Update(data))
	assert.Equal(t, BlockSize, st.buflen)
	assert.Equal(t, Hash(data).Hex(), st.Finalize().Hex())
}

func TestDispatchEquivalence(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, twice over for good measure")
	var a, b [8]uint32
	var block [BlockSize]byte
	copy(block[:], data)
	compressGeneric(&a, &block, uint32(len(data)), 0, ^uint32(0), 0)
	compressSIMD(&b, &block, uint32(len(data)), 0, ^uint32(0), 0)
	assert.Equal(t, a, b)
}

func TestUpdateAfterFinalize(t *testing.T) {
	st, err := NewParams().New()
	require.NoError(t, err)
	st.Finalize()
	assert.ErrorIs(t, st.Update([]byte("x")), ErrUpdateAfterFinalize)
}

func TestHashManyAgreesWithHash(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("abc"),
		make([]byte, BlockSize),
		make([]byte, BlockSize+1),
		make([]byte, 5*BlockSize+13),
	}
	for i, in := range inputs {
		for j := range in {
			in[j] = byte(i*31 + j)
		}
	}

	got, err := HashMany(NewParams(), inputs)
	require.NoError(t, err)
	require.Len(t, got, len(inputs))
	for i, in := range inputs {
		assert.Equal(t, Hash(in).Hex(), got[i].Hex(), "input %d", i)
	}
}

func TestUpdateManyPreservesPerJobOrdering(t *testing.T) {
	a := make([]byte, 2*BlockSize+3)
	b := make([]byte, 3)
	c := make([]byte, 9*BlockSize)
	for _, buf := range [][]byte{a, b, c} {
		for i := range buf {
			buf[i] = byte(i)
		}
	}

	wantA, wantB, wantC := Hash(a), Hash(b), Hash(c)

	stA, err := NewParams().New()
	require.NoError(t, err)
	stB, err := NewParams().New()
	require.NoError(t, err)
	stC, err := NewParams().New()
	require.NoError(t, err)

	require.NoError(t, UpdateMany([]Job{
		{State: stA, Input: a},
		{State: stB, Input: b},
		{State: stC, Input: c},
	}))

	assert.Equal(t, wantA.Hex(), stA.Finalize().Hex())
	assert.Equal(t, wantB.Hex(), stB.Finalize().Hex())
	assert.Equal(t, wantC.Hex(), stC.Finalize().Hex())
}
