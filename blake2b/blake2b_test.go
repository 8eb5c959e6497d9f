package blake2b

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors straight from RFC 7693 appendix A / the reference KAT suite.
var standardVectors = []struct {
	name string
	in   []byte
	hex  string
}{
	{"empty", nil, "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"},
	{"abc", []byte("abc"), "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
	{"foo", []byte("foo"), "ca002330e69d3e6b84a46a56a6533fd79d51d97a3bb7cad6c2ff43b354185d6dc1e723fb3db4ae0737e120378424c714bb982d9dc5bbd7a0ab318240ddd18f8d"},
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
		digestLength: 64,
		keyLength:    32,
		fanout:       1,
		depth:        1,
	}
	raw := pb.marshal()
	assert.Equal(t, byte(64), raw[0])
	assert.Equal(t, byte(32), raw[1])
	assert.Equal(t, byte(1), raw[2])
	assert.Equal(t, byte(1), raw[3])
	for _, b := range raw[18:32] {
		assert.Equal(t, byte(0), b, "reserved region must be zero")
	}

	h := pb.chainingIV()
	assert.Equal(t, iv0^uint64(0x0000000001012040), h[0])
}

func TestKeyedAndPersonalizedVector(t *testing.T) {
	// From spec.md's streaming scenario.
	d, err := NewParams().
		DigestLength(16).
		Key([]byte("The Magic Words are Squeamish Ossifrage")).
		Personal([]byte("L. P. Waterhouse")).
		New()
	require.NoError(t, err)
	require.NoError(t, d.Update([]byte("foo")))
	require.NoError(t, d.Update([]byte("bar")))
	require.NoError(t, d.Update([]byte("baz")))
	assert.Equal(t, "ee8ff4e9be887297cf79348dc35dab56", d.Finalize().Hex())
}

func TestParamsRejectsOutOfRange(t *testing.T) {
	_, err := NewParams().DigestLength(0).New()
	assert.ErrorIs(t, err, ErrParameterOutOfRange)

	_, err = NewParams().DigestLength(65).New()
	assert.ErrorIs(t, err, ErrParameterOutOfRange)

	bigKey := make([]byte, MaxKeySize+1)
	_, err = NewParams().Key(bigKey).New()
	assert.ErrorIs(t, err, ErrParameterOutOfRange)

	bigSalt := make([]byte, SaltSize+1)
	_, err = NewParams().Salt(bigSalt).New()
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

func TestUpdateAfterFinalize(t *testing.T) {
	st, err := NewParams().New()
	require.NoError(t, err)
	st.Finalize()
	assert.ErrorIs(t, st.Update([]byte("x")), ErrUpdateAfterFinalize)
}

func TestParameterChangesChangeDigest(t *testing.T) {
	base := Hash([]byte("x"))

	keyed, err := NewParams().Key([]byte("k")).Hash([]byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, base.Hex(), keyed.Hex())

	salted, err := NewParams().Salt([]byte("salt0123456789ab")).Hash([]byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, base.Hex(), salted.Hex())

	personal, err := NewParams().Personal([]byte("person0123456789")).Hash([]byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, base.Hex(), personal.Hex())
}

func TestChunkingInvariance(t *testing.T) {
	data := make([]byte, 3*BlockSize+17)
	for i := range data {
		data[i] = byte(i * 7)
	}
	want := Hash(data)

	chunkSizes := []int{1, 3, 7, BlockSize, BlockSize + 1, 2 * BlockSize}
	for _, size := range chunkSizes {
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
	// Exactly N full blocks of input: the Nth block must be finalized
	// with f=1, not compressed as an ordinary block followed by an
	// empty finalization.
	data := make([]byte, 2*BlockSize)
	st, err := NewParams().New()
	require.NoError(t, err)
	require.NoError(t, st.Update(data))
	assert.Equal(t, BlockSize, st.buflen, "the last block must still be held, not yet compressed")
	got := st.Finalize()
	assert.Equal(t, Hash(data).Hex(), got.Hex())
}

func TestDispatchEquivalence(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, twice over for good measure")
	var generic [8]uint64
	var block [BlockSize]byte
	copy(block[:], data)
	simdH := generic
	compressGeneric(&generic, &block, uint64(len(data)), 0, ^uint64(0), 0)
	compressSIMD(&simdH, &block, uint64(len(data)), 0, ^uint64(0), 0)
	assert.Equal(t, generic, simdH)
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

var emptyBuf = make([]byte, 16384)

func benchmarkHashSize(b *testing.B, size int) {
	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Hash(emptyBuf[:size])
	}
}

func BenchmarkHash8Bytes(b *testing.B) { benchmarkHashSize(b, 8) }
func BenchmarkHash1K(b *testing.B)     { benchmarkHashSize(b, 1024) }
func BenchmarkHash8K(b *testing.B)     { benchmarkHashSize(b, 8192) }
