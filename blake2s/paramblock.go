package blake2s

import "encoding/binary"

// paramBlock is the 32-byte little-endian BLAKE2s parameter block, laid
// out exactly as RFC 7693 section 2.5 describes it. node_offset is only
// 48 bits wide here (unlike blake2b's 64), and last_node is not part of
// the wire header — it lives on State as a flag instead.
type paramBlock struct {
	digestLength    byte
	keyLength       byte
	fanout          byte
	depth           byte
	leafLength      uint32
	nodeOffset      uint64 // must fit in 48 bits, enforced by Params.NodeOffset
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
	for i := 0; i < 6; i++ {
		buf[8+i] = byte(p.nodeOffset >> (8 * uint(i)))
	}
	buf[14] = p.nodeDepth
	buf[15] = p.innerHashLength
	copy(buf[16:24], p.salt[:])
	copy(buf[24:32], p.personal[:])
	return buf
}

// chainingIV XORs the parameter block word-by-word into the standard IV,
// producing the initial chaining value H for a State built from p.
func (p *paramBlock) chainingIV() [8]uint32 {
	raw := p.marshal()
	var h [8]uint32
	for i := 0; i < 8; i++ {
		h[i] = iv[i] ^ binary.LittleEndian.Uint32(raw[i*4:i*4+4])
	}
	return h
}
