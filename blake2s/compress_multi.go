package blake2s

import "math/bits"

// lane holds everything compressMulti needs for one of the N states it
// advances in lockstep.
type lane struct {
	h      *[8]uint32
	block  *[BlockSize]byte
	t0, t1 uint32
	f0, f1 uint32
}

// compressMulti advances len(lanes) independent BLAKE2s states through
// one compression each, as if compressGeneric had been called on every
// lane independently. See blake2b's compress_multi.go for the full
// rationale; this is the 32-bit mirror of it, used for N ∈ {8,16}.
func compressMulti(lanes []lane) {
	n := len(lanes)
	if n == 0 {
		return
	}

	m := make([][16]uint32, n)
	vv := make([][16]uint32, n)
	for i, ln := range lanes {
		for j := 0; j < 16; j++ {
			m[i][j] = leUint32(ln.block[j*4 : j*4+4])
		}
		vv[i] = [16]uint32{
			ln.h[0], ln.h[1], ln.h[2], ln.h[3], ln.h[4], ln.h[5], ln.h[6], ln.h[7],
			iv0, iv1, iv2, iv3,
			iv4 ^ ln.t0, iv5 ^ ln.t1, iv6 ^ ln.f0, iv7 ^ ln.f1,
		}
	}

	gLane := func(i, ia, ib, ic, id int, x, y uint32) {
		v := &vv[i]
		a, b, c, d := v[ia], v[ib], v[ic], v[id]
		a = a + b + x
		d = bits.RotateLeft32(d^a, -r1)
		c = c + d
		b = bits.RotateLeft32(b^c, -r2)
		a = a + b + y
		d = bits.RotateLeft32(d^a, -r3)
		c = c + d
		b = bits.RotateLeft32(b^c, -r4)
		v[ia], v[ib], v[ic], v[id] = a, b, c, d
	}

	for round := 0; round < RoundCount; round++ {
		s := sigma[round]
		for i := 0; i < n; i++ {
			mi := &m[i]
			gLane(i, 0, 4, 8, 12, mi[s[0]], mi[s[1]])
			gLane(i, 1, 5, 9, 13, mi[s[2]], mi[s[3]])
			gLane(i, 2, 6, 10, 14, mi[s[4]], mi[s[5]])
			gLane(i, 3, 7, 11, 15, mi[s[6]], mi[s[7]])

			gLane(i, 0, 5, 10, 15, mi[s[8]], mi[s[9]])
			gLane(i, 1, 6, 11, 12, mi[s[10]], mi[s[11]])
			gLane(i, 2, 7, 8, 13, mi[s[12]], mi[s[13]])
			gLane(i, 3, 4, 9, 14, mi[s[14]], mi[s[15]])
		}
	}

	for i, ln := range lanes {
		v := vv[i]
		for j := 0; j < 8; j++ {
			ln.h[j] ^= v[j] ^ v[j+8]
		}
	}
}
