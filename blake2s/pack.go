package blake2s

// leUint32 reads a little-endian uint32 from the first 4 bytes of b.
func leUint32(b []byte) uint32 {
	_ = b[3] // bounds check hint to the compiler, see golang.org/issue/14808
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
