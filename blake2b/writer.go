package blake2b

// Write implements io.Writer on top of Update, so a State can be used
// anywhere a byte-stream sink is expected (io.Copy into a hasher, for
// instance). It never returns a short write: on success n == len(p).
func (s *State) Write(p []byte) (n int, err error) {
	if err := s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
