package blake2s

// Word-level constants for BLAKE2s. All arithmetic is modulo 2^32.
const (
	// BlockSize is the size in bytes of a BLAKE2s compression block.
	BlockSize = 64
	// MaxDigestSize is the largest digest blake2s can produce.
	MaxDigestSize = 32
	// MaxKeySize is the largest key blake2s accepts.
	MaxKeySize = 32
	// SaltSize is the size in bytes of the salt field.
	SaltSize = 8
	// PersonalSize is the size in bytes of the personalization field.
	PersonalSize = 8
	// RoundCount is the number of G-function rounds per compression.
	RoundCount = 10
	// MaxNodeOffset is the largest node_offset blake2s accepts: the
	// field is only 48 bits wide on the wire, unlike blake2b's full 64.
	MaxNodeOffset = 1<<48 - 1

	paramBlockSize = 32
)

// Initialization vector, RFC 7693 section 2.6.
const (
	iv0 uint32 = 0x6a09e667
	iv1 uint32 = 0xbb67ae85
	iv2 uint32 = 0x3c6ef372
	iv3 uint32 = 0xa54ff53a
	iv4 uint32 = 0x510e527f
	iv5 uint32 = 0x9b05688c
	iv6 uint32 = 0x1f83d9ab
	iv7 uint32 = 0x5be0cd19
)

var iv = [8]uint32{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}

// Rotation constants for the G function, in application order.
const (
	r1 = 16
	r2 = 12
	r3 = 8
	r4 = 7
)

// sigma is the message word permutation schedule shared by BLAKE2b and
// BLAKE2s; BLAKE2s uses all 10 rows once each.
var sigma = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

var columnGroup = [4][4]int{
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
}

var diagonalGroup = [4][4]int{
	{0, 5, 10, 15},
	{1, 6, 11, 12},
	{2, 7, 8, 13},
	{3, 4, 9, 14},
}
