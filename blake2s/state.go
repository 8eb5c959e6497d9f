package blake2s

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

// State is a streaming BLAKE2s hash. It is built by Params.New, mutated
// by Update, and consumed by Finalize.
type State struct {
	h         [8]uint32
	t0, t1    uint32
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
		copy(s.buf[:], p.key)
		s.buflen = BlockSize
	}
	return s
}

func (s *State) compressBlock(n uint32, final bool) {
	s.t0 += n
	if s.t0 < n {
		s.t1++
	}
	var f0, f1 uint32
	if final {
		f0 = ^uint32(0)
		if s.lastNode {
			f1 = ^uint32(0)
		}
	}
	compress1(&s.h, &s.buf, s.t0, s.t1, f0, f1)
}

// Update absorbs more input, holding back whatever block is
// in-progress (or, if the buffer just filled exactly, the full block
// itself) until a later Update or Finalize proves whether more input
// is coming.
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

// Finalize terminates the stream and returns its digest.
func (s *State) Finalize() Digest {
	if s.finalized {
		return s.cached
	}
	for i := s.buflen; i < BlockSize; i++ {
		s.buf[i] = 0
	}
	s.compressBlock(uint32(s.buflen), true)

	var d Digest
	d.size = s.size
	for i := 0; i < d.size; i++ {
		d.bytes[i] = byte(s.h[i/4] >> (8 * uint(i%4)))
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
