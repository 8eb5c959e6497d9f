package blake2b

// ByteCount is a 128-bit byte counter, split into low and high 64-bit
// halves because Go has no native 128-bit integer.
type ByteCount struct {
	Lo, Hi uint64
}

func (c *ByteCount) add(n uint64) {
	old := c.Lo
	c.Lo += n
	if c.Lo < old {
		c.Hi++
	}
}

// State is a streaming BLAKE2b hash. It is built by Params.New, mutated
// by Update, and consumed by Finalize. Update after Finalize returns
// ErrUpdateAfterFinalize; Finalize itself is infallible and idempotent
// (repeated calls return the cached digest without recompressing).
//
// State owns its chaining value, counter, and one-block hold buffer
// exclusively; nothing about it is safe to share between goroutines,
// per the single-threaded contract of this package — two goroutines
// must use two distinct States.
type State struct {
	h         [8]uint64
	t0, t1    uint64
	buf       [BlockSize]byte
	buflen    int
	size      int
	lastNode  bool
	finalized bool
	cached    Digest

	absorbed ByteCount
}

func newState(p *Params) *State {
	pb := p.block()
	s := &State{
		h:        pb.chainingIV(),
		size:     p.digestLength,
		lastNode: p.lastNode,
	}
	if len(p.key) > 0 {
		// The key occupies a synthetic first block, zero-padded to
		// BlockSize. It is held, not compressed, until Update proves
		// there is more input (or Finalize proves there isn't) — the
		// same hold-the-last-block machinery handles both the key
		// block and ordinary data blocks uniformly.
		copy(s.buf[:], p.key)
		s.buflen = BlockSize
	}
	return s
}

// compressBlock runs one compression over the current buffer contents,
// advancing the counter by n bytes first as RFC 7693 requires.
func (s *State) compressBlock(n uint64, final bool) {
	s.t0 += n
	if s.t0 < n {
		s.t1++
	}
	var f0, f1 uint64
	if final {
		f0 = ^uint64(0)
		if s.lastNode {
			f1 = ^uint64(0)
		}
	}
	compress1(&s.h, &s.buf, s.t0, s.t1, f0, f1)
}

// Update absorbs more input. It never compresses the block currently
// sitting in the hold buffer — only a later Update or Finalize call can
// do that — which is what lets Finalize set the finalize flag on
// exactly the right compression.
func (s *State) Update(p []byte) error {
	if s.finalized {
		return ErrUpdateAfterFinalize
	}
	if len(p) == 0 {
		return nil
	}
	s.absorbed.add(uint64(len(p)))

	for {
		if s.buflen == BlockSize {
			s.compressBlock(BlockSize, false)
			s.buflen = 0
		}

		space := BlockSize - s.buflen
		if len(p) <= space {
			copy(s.buf[s.buflen:], p)
			s.buflen += len(p)
			return nil
		}

		if s.buflen == 0 && len(p) > BlockSize {
			for len(p) > BlockSize {
				copy(s.buf[:], p[:BlockSize])
				s.compressBlock(BlockSize, false)
				p = p[BlockSize:]
			}
			continue
		}

		copy(s.buf[s.buflen:], p[:space])
		s.buflen = BlockSize
		p = p[space:]
	}
}

// Finalize terminates the stream and returns its digest. The held block
// — which may be a short final block, a full block whose finalize flag
// just hadn't been set yet, or (for empty input with no key) an
// all-zero block — is compressed exactly once with f=1.
func (s *State) Finalize() Digest {
	if s.finalized {
		return s.cached
	}
	for i := s.buflen; i < BlockSize; i++ {
		s.buf[i] = 0
	}
	s.compressBlock(uint64(s.buflen), true)

	var d Digest
	d.size = s.size
	for i := 0; i < d.size; i++ {
		d.bytes[i] = byte(s.h[i/8] >> (8 * uint(i%8)))
	}

	s.cached = d
	s.finalized = true
	return d
}

// Count returns the number of bytes passed to Update so far, not
// counting the synthetic key block a keyed Params prepends.
func (s *State) Count() ByteCount {
	return s.absorbed
}
