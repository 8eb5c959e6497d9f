package blake2b

// Job pairs a State with the next chunk of input destined for it. It is
// the unit UpdateMany operates on.
type Job struct {
	State *State
	Input []byte
}

// pendingBlocks splits p into the full blocks that are safe to compress
// right now (with f=0) and the tail that must stay in the hold buffer,
// exactly mirroring the buffering State.Update does on its own, but
// without compressing anything yet — UpdateMany compresses the
// collected blocks across jobs in lockstep afterwards.
func (s *State) pendingBlocks(p []byte) [][BlockSize]byte {
	if s.finalized || len(p) == 0 {
		return nil
	}
	s.absorbed.add(uint64(len(p)))

	var full [][BlockSize]byte
	for {
		if s.buflen == BlockSize {
			full = append(full, s.buf)
			s.buflen = 0
		}

		space := BlockSize - s.buflen
		if len(p) <= space {
			copy(s.buf[s.buflen:], p)
			s.buflen += len(p)
			return full
		}

		if s.buflen == 0 && len(p) > BlockSize {
			for len(p) > BlockSize {
				var blk [BlockSize]byte
				copy(blk[:], p[:BlockSize])
				full = append(full, blk)
				p = p[BlockSize:]
			}
			continue
		}

		copy(s.buf[s.buflen:], p[:space])
		s.buflen = BlockSize
		p = p[space:]
	}
}

// UpdateMany advances every job's State by its Input, compressing full
// blocks across jobs in groups of up to the dispatcher's multi-state
// width instead of one state at a time. Jobs that run out of full
// blocks before the others drop out of the current group and simply
// wait — the next round is sized to whoever is still active — and a
// job's own State is left exactly as if Update(Input) had been called
// on it directly: writes to distinct jobs never interleave in their
// visible state, only in which physical compression call services them.
func UpdateMany(jobs []Job) error {
	for _, j := range jobs {
		if j.State.finalized {
			return ErrUpdateAfterFinalize
		}
	}
	pending := make([][][BlockSize]byte, len(jobs))
	for i, j := range jobs {
		pending[i] = j.State.pendingBlocks(j.Input)
	}

	width := multiWidth()
	for {
		active := activeIndices(pending)
		if len(active) == 0 {
			return nil
		}
		if len(active) > width {
			active = active[:width]
		}

		lanes := make([]lane, len(active))
		for li, ji := range active {
			st := jobs[ji].State
			block := pending[ji][0]
			pending[ji] = pending[ji][1:]

			st.t0 += BlockSize
			if st.t0 < BlockSize {
				st.t1++
			}
			lanes[li] = lane{h: &st.h, block: &block, t0: st.t0, t1: st.t1}
		}
		compressMulti(lanes)
	}
}

func activeIndices(pending [][][BlockSize]byte) []int {
	var active []int
	for i, blocks := range pending {
		if len(blocks) > 0 {
			active = append(active, i)
		}
	}
	return active
}

// HashMany hashes every input under a clone of the same Params and
// returns one Digest per input, in order. It is equivalent to calling
// p.Hash on each input independently, but advances the underlying
// states together through the multi-state compressor.
func HashMany(p *Params, inputs [][]byte) ([]Digest, error) {
	states := make([]*State, len(inputs))
	jobs := make([]Job, len(inputs))
	for i, in := range inputs {
		st, err := p.New()
		if err != nil {
			return nil, err
		}
		states[i] = st
		jobs[i] = Job{State: st, Input: in}
	}

	if err := UpdateMany(jobs); err != nil {
		return nil, err
	}

	out := make([]Digest, len(inputs))
	for i, st := range states {
		out[i] = st.Finalize()
	}
	return out, nil
}
