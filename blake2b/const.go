package blake2b

// Word-level constants for BLAKE2b. All arithmetic is modulo 2^64.
const (
	// BlockSize is the size in bytes of a BLAKE2b compression block.
	BlockSize = 128
	// MaxDigestSize is the largest digest blake2b can produce.
	MaxDigestSize = 64
	// MaxKeySize is the largest key blake2b accepts.
	MaxKeySize = 64
	// SaltSize is the size in bytes of the salt field.
	SaltSize = 16
	// PersonalSize is the size in bytes of the personalization field.
	PersonalSize = 16
	// RoundCount is the number of G-function rounds per compression.
	RoundCount = 12

	paramBlockSize = 64
)

// Initialization vector, RFC 7693 section 2.6.
const (
	iv0 uint64 = 0x6a09e667f3bcc908
	iv1 uint64 = 0xbb67ae8584caa73b
	iv2 uint64 = 0x3c6ef372fe94f82b
	iv3 uint64 = 0xa54ff53a5f1d36f1
	iv4 uint64 = 0x510e527fade682d1
	iv5 uint64 = 0x9b05688c2b3e6c1f
	iv6 uint64 = 0x1f83d9abfb41bd6b
	iv7 uint64 = 0x5be0cd19137e2179
)

var iv = [8]uint64{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}

// Rotation constants for the G function, in application order.
const (
	r1 = 32
	r2 = 24
	r3 = 16
	r4 = 63
)

// sigma is the message word permutation schedule shared by BLAKE2b and
// BLAKE2s. BLAKE2b uses RoundCount=12 rounds, cycling back through the
// first two rows for rounds 10 and 11; BLAKE2s stops after row 9.
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

// columnGroup and diagonalGroup list, for each round, the four v-indices
// that the column step and diagonal step update together. compressSIMD
// applies one round's G-step to each group as a 4-wide operation.
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
