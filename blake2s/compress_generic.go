package blake2s

import (
	"encoding/binary"
	"math/bits"
)

// g is the BLAKE2s mixing function.
func g(a, b, c, d, x, y uint32) (uint32, uint32, uint32, uint32) {
	a = a + b + x
	d = bits.RotateLeft32(d^a, -r1)
	c = c + d
	b = bits.RotateLeft32(b^c, -r2)
	a = a + b + y
	d = bits.RotateLeft32(d^a, -r3)
	c = c + d
	b = bits.RotateLeft32(b^c, -r4)
	return a, b, c, d
}

// compressGeneric is the portable reference compression function F.
func compressGeneric(h *[8]uint32, block *[BlockSize]byte, t0, t1, f0, f1 uint32) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4 : i*4+4])
	}

	v := [16]uint32{
		h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7],
		iv0, iv1, iv2, iv3,
		iv4 ^ t0, iv5 ^ t1, iv6 ^ f0, iv7 ^ f1,
	}

	for round := 0; round < RoundCount; round++ {
		s := sigma[round]
		v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12], m[s[0]], m[s[1]])
		v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13], m[s[2]], m[s[3]])
		v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14], m[s[4]], m[s[5]])
		v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15], m[s[6]], m[s[7]])

		v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15], m[s[8]], m[s[9]])
		v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12], m[s[10]], m[s[11]])
		v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13], m[s[12]], m[s[13]])
		v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14], m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}
