package blake2b

import "encoding/binary"

// paramBlock is the 64-byte little-endian BLAKE2b parameter block, laid
// out exactly as RFC 7693 section 2.5 describes it. Every field not set
// explicitly is zero, and last_node is deliberately absent: it is not
// part of the wire header, it is a flag carried on State instead.
type paramBlock struct {
	digestLength    byte
	keyLength       byte
	fanout          byte
	depth           byte
	leafLength      uint32
	nodeOffset      uint64
	nodeDepth       byte
	innerHashLength byte
	salt            [SaltSize]byte
	personal        [PersonalSize]byte
}

func (p *paramBlock) marshal() [paramBlockSize]byte {
	var buf [paramBlockSize]byte
	buf[0] = p.digestLength
	buf[1] = p.keyLength
	buf[2] = p.fanout
	buf[3] = p.depth
	binary.LittleEndian.PutUint32(buf[4:8], p.leafLength)
	binary.LittleEndian.PutUint64(buf[8:16], p.nodeOffset)
	buf[16] = p.nodeDepth
	buf[17] = p.innerHashLength
	// buf[18:32] is the reserved region, left zero.
	copy(buf[32:48], p.salt[:])
	copy(buf[48:64], p.personal[:])
	return buf
}

// chainingIV XORs the parameter block word-by-word into the standard IV,
// producing the initial chaining value H for a State built from p.
func (p *paramBlock) chainingIV() [8]uint64 {
	raw := p.marshal()
	var h [8]uint64
	for i := 0; i < 8; i++ {
		h[i] = iv[i] ^ binary.LittleEndian.Uint64(raw[i*8:i*8+8])
	}
	return h
}
