package blake2b

import "math/bits"

// lane holds everything compressMulti needs for one of the N states it
// advances in lockstep: its chaining value, one full input block, its
// counter already advanced by this block, and its finalize/last-node
// flags for this call.
type lane struct {
	h          *[8]uint64
	block      *[BlockSize]byte
	t0, t1     uint64
	f0, f1     uint64
}

// compressMulti advances len(lanes) independent BLAKE2b states through
// one compression each, as if compressGeneric had been called on every
// lane independently. It is the software realization of C4: each state
// is loaded into its own 16-word working vector and the round schedule
// runs once for all lanes, applying every G-step of a round to each lane
// in turn. The states are not transposed into per-word lane arrays; the
// arithmetic is scalar, one lane after another.
//
// Every lane must supply a full BlockSize block; padding a short tail
// block is the caller's responsibility (the "hold the last block"
// invariant in State exists precisely so this never has to happen for
// an in-progress stream).
func compressMulti(lanes []lane) {
	n := len(lanes)
	if n == 0 {
		return
	}

	m := make([][16]uint64, n)
	vv := make([][16]uint64, n)
	for i, ln := range lanes {
		for j := 0; j < 16; j++ {
			m[i][j] = leUint64(ln.block[j*8 : j*8+8])
		}
		vv[i] = [16]uint64{
			ln.h[0], ln.h[1], ln.h[2], ln.h[3], ln.h[4], ln.h[5], ln.h[6], ln.h[7],
			iv0, iv1, iv2, iv3,
			iv4 ^ ln.t0, iv5 ^ ln.t1, iv6 ^ ln.f0, iv7 ^ ln.f1,
		}
	}

	gLane := func(i, ia, ib, ic, id int, x, y uint64) {
		v := &vv[i]
		a, b, c, d := v[ia], v[ib], v[ic], v[id]
		a = a + b + x
		d = bits.RotateLeft64(d^a, -r1)
		c = c + d
		b = bits.RotateLeft64(b^c, -r2)
		a = a + b + y
		d = bits.RotateLeft64(d^a, -r3)
		c = c + d
		b = bits.RotateLeft64(b^c, -r4)
		v[ia], v[ib], v[ic], v[id] = a, b, c, d
	}

	for round := 0; round < RoundCount; round++ {
		s := sigma[round%10]
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
