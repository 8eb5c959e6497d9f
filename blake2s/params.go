package blake2s

// Params is a builder for a BLAKE2s State. Every setter validates its
// argument and records the failure instead of clamping it; the error is
// surfaced when the Params is finally turned into a State (by New or
// Hash).
type Params struct {
	digestLength    int
	key             []byte
	fanout          byte
	depth           byte
	leafLength      uint32
	nodeOffset      uint64
	nodeDepth       byte
	innerHashLength int
	salt            []byte
	personal        []byte
	lastNode        bool

	err error
}

// NewParams returns a Params configured for a default, sequential-mode
// BLAKE2s hash producing MaxDigestSize bytes of output.
func NewParams() *Params {
	return &Params{
		digestLength: MaxDigestSize,
		fanout:       1,
		depth:        1,
	}
}

func (p *Params) fail(err error) *Params {
	if p.err == nil {
		p.err = err
	}
	return p
}

// DigestLength sets the output length in bytes, 1..=32.
func (p *Params) DigestLength(n int) *Params {
	if n < 1 || n > MaxDigestSize {
		return p.fail(ErrParameterOutOfRange)
	}
	p.digestLength = n
	return p
}

// Key sets the secret key, 0..=32 bytes.
func (p *Params) Key(key []byte) *Params {
	if len(key) > MaxKeySize {
		return p.fail(ErrParameterOutOfRange)
	}
	p.key = key
	return p
}

// Salt sets the salt field, 0..=8 bytes, zero-padded on the right.
func (p *Params) Salt(salt []byte) *Params {
	if len(salt) > SaltSize {
		return p.fail(ErrParameterOutOfRange)
	}
	p.salt = salt
	return p
}

// Personal sets the personalization field, with the same length rules
// as Salt.
func (p *Params) Personal(personal []byte) *Params {
	if len(personal) > PersonalSize {
		return p.fail(ErrParameterOutOfRange)
	}
	p.personal = personal
	return p
}

// Fanout sets the tree fanout. 0 means unlimited, 1 means sequential
// mode (the default), anything else designates a tree.
func (p *Params) Fanout(fanout int) *Params {
	if fanout < 0 || fanout > 255 {
		return p.fail(ErrParameterOutOfRange)
	}
	p.fanout = byte(fanout)
	return p
}

// MaxDepth sets the tree depth. 0 means unlimited.
func (p *Params) MaxDepth(depth int) *Params {
	if depth < 0 || depth > 255 {
		return p.fail(ErrParameterOutOfRange)
	}
	p.depth = byte(depth)
	return p
}

// MaxLeafLength sets the leaf_length tree-hashing field.
func (p *Params) MaxLeafLength(n uint32) *Params {
	p.leafLength = n
	return p
}

// NodeOffset sets the node_offset tree-hashing field. BLAKE2s only
// encodes 48 bits of it; values above MaxNodeOffset are rejected rather
// than silently truncated.
func (p *Params) NodeOffset(offset uint64) *Params {
	if offset > MaxNodeOffset {
		return p.fail(ErrParameterOutOfRange)
	}
	p.nodeOffset = offset
	return p
}

// NodeDepth sets the node_depth tree-hashing field.
func (p *Params) NodeDepth(depth int) *Params {
	if depth < 0 || depth > 255 {
		return p.fail(ErrParameterOutOfRange)
	}
	p.nodeDepth = byte(depth)
	return p
}

// InnerHashLength sets the inner_hash_length tree-hashing field, 0..=32.
func (p *Params) InnerHashLength(n int) *Params {
	if n < 0 || n > MaxDigestSize {
		return p.fail(ErrParameterOutOfRange)
	}
	p.innerHashLength = n
	return p
}

// LastNode marks this State as the rightmost node of its tree level.
func (p *Params) LastNode(last bool) *Params {
	p.lastNode = last
	return p
}

func (p *Params) block() *paramBlock {
	b := &paramBlock{
		digestLength:    byte(p.digestLength),
		keyLength:       byte(len(p.key)),
		fanout:          p.fanout,
		depth:           p.depth,
		leafLength:      p.leafLength,
		nodeOffset:      p.nodeOffset,
		nodeDepth:       p.nodeDepth,
		innerHashLength: byte(p.innerHashLength),
	}
	copy(b.salt[:], p.salt)
	copy(b.personal[:], p.personal)
	return b
}

// New builds a streaming State from the accumulated parameters. It
// returns the first error recorded by any setter, if any.
func (p *Params) New() (*State, error) {
	if p.err != nil {
		return nil, p.err
	}
	return newState(p), nil
}

// Hash is a one-shot convenience: it builds a State, absorbs data, and
// finalizes it.
func (p *Params) Hash(data []byte) (Digest, error) {
	st, err := p.New()
	if err != nil {
		return Digest{}, err
	}
	if err := st.Update(data); err != nil {
		return Digest{}, err
	}
	return st.Finalize(), nil
}
