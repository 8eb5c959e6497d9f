package blake2s

import "math/bits"

// gQuad applies g to four independent (a,b,c,d,x,y) tuples packed into
// 4-lane arrays — the shape a real SSE4.1/AVX2/NEON kernel would mix
// with one vector register per variable. See blake2b's compress_simd.go
// for the full rationale; this is the 32-bit mirror of it.
func gQuad(a, b, c, d, x, y [4]uint32) (ra, rb, rc, rd [4]uint32) {
	for i := 0; i < 4; i++ {
		a[i] = a[i] + b[i] + x[i]
		d[i] = bits.RotateLeft32(d[i]^a[i], -r1)
		c[i] = c[i] + d[i]
		b[i] = bits.RotateLeft32(b[i]^c[i], -r2)
		a[i] = a[i] + b[i] + y[i]
		d[i] = bits.RotateLeft32(d[i]^a[i], -r3)
		c[i] = c[i] + d[i]
		b[i] = bits.RotateLeft32(b[i]^c[i], -r4)
	}
	return a, b, c, d
}

// compressSIMD computes the same function as compressGeneric, structured
// as a column-step/diagonal-step pair of 4-wide vector operations per
// round instead of four sequential scalar G-calls.
func compressSIMD(h *[8]uint32, block *[BlockSize]byte, t0, t1, f0, f1 uint32) {
	var m [16]uint32
	for i := range m {
		m[i] = leUint32(block[i*4 : i*4+4])
	}

	v := [16]uint32{
		h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7],
		iv0, iv1, iv2, iv3,
		iv4 ^ t0, iv5 ^ t1, iv6 ^ f0, iv7 ^ f1,
	}

	for round := 0; round < RoundCount; round++ {
		s := sigma[round]

		var a, b, c, d, x, y [4]uint32
		for k := 0; k < 4; k++ {
			g := columnGroup[k]
			a[k], b[k], c[k], d[k] = v[g[0]], v[g[1]], v[g[2]], v[g[3]]
			x[k], y[k] = m[s[2*k]], m[s[2*k+1]]
		}
		a, b, c, d = gQuad(a, b, c, d, x, y)
		for k := 0; k < 4; k++ {
			g := columnGroup[k]
			v[g[0]], v[g[1]], v[g[2]], v[g[3]] = a[k], b[k], c[k], d[k]
		}

		for k := 0; k < 4; k++ {
			g := diagonalGroup[k]
			a[k], b[k], c[k], d[k] = v[g[0]], v[g[1]], v[g[2]], v[g[3]]
			x[k], y[k] = m[s[8+2*k]], m[s[8+2*k+1]]
		}
		a, b, c, d = gQuad(a, b, c, d, x, y)
		for k := 0; k < 4; k++ {
			g := diagonalGroup[k]
			v[g[0]], v[g[1]], v[g[2]], v[g[3]] = a[k], b[k], c[k], d[k]
		}
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}
