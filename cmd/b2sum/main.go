// Command b2sum computes BLAKE2 message digests, in the
// style of the coreutils b2sum/sha256sum family: one line of
// "digest␣␣filename" output per input, reading from files named on the
// command line or from stdin when none are given.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oconnor663/blake2-simd/blake2b"
	"github.com/oconnor663/blake2-simd/blake2bp"
	"github.com/oconnor663/blake2-simd/blake2s"
	"github.com/oconnor663/blake2-simd/blake2sp"
)

var flags struct {
	blake2s  bool
	parallel bool
	length   int
	key      string
	salt     string
	personal string

	fanout          uint
	maxDepth        uint
	maxLeafLength   uint
	nodeOffset      uint64
	nodeDepth       uint
	innerHashLength uint
	lastNode        bool

	useMmap bool
	verbose bool
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "b2sum [file...]",
	Short: "compute BLAKE2 message digests",
	RunE:  runB2sum,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flags.blake2s, "blake2s", "s", false, "use BLAKE2s instead of BLAKE2b")
	f.BoolVarP(&flags.parallel, "tree", "p", false, "use the fixed-fanout tree mode (blake2bp/blake2sp)")
	f.IntVarP(&flags.length, "length", "l", 0, "digest length in bytes (default: the algorithm's full width)")
	f.StringVar(&flags.key, "key", "", "hex-encoded key for keyed hashing")
	f.StringVar(&flags.salt, "salt", "", "hex-encoded salt (ignored with --tree)")
	f.StringVar(&flags.personal, "personal", "", "hex-encoded personalization string (ignored with --tree)")
	f.UintVar(&flags.fanout, "fanout", 0, "tree fanout (ignored with --tree; 0 means sequential)")
	f.UintVar(&flags.maxDepth, "max-depth", 0, "tree max depth (ignored with --tree)")
	f.UintVar(&flags.maxLeafLength, "max-leaf-length", 0, "tree leaf length (ignored with --tree)")
	f.Uint64Var(&flags.nodeOffset, "node-offset", 0, "tree node offset (ignored with --tree)")
	f.UintVar(&flags.nodeDepth, "node-depth", 0, "tree node depth (ignored with --tree)")
	f.UintVar(&flags.innerHashLength, "inner-hash-length", 0, "tree inner hash length (ignored with --tree)")
	f.BoolVar(&flags.lastNode, "last-node", false, "mark this hash as the rightmost tree node (ignored with --tree)")
	f.BoolVar(&flags.useMmap, "mmap", false, "memory-map input files instead of streaming them")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log per-file diagnostics to stderr")
}

func runB2sum(cmd *cobra.Command, args []string) error {
	if flags.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	key, err := decodeHex("key", flags.key)
	if err != nil {
		return err
	}
	salt, err := decodeHex("salt", flags.salt)
	if err != nil {
		return err
	}
	personal, err := decodeHex("personal", flags.personal)
	if err != nil {
		return err
	}

	h, err := newHasher(key, salt, personal)
	if err != nil {
		return errors.Wrap(err, "building hasher")
	}

	if len(args) == 0 {
		return sumOne(h, "-", os.Stdin)
	}

	var failures int
	for _, path := range args {
		if err := sumPath(h, path); err != nil {
			logrus.Errorf("%s: %v", path, err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed", failures, len(args))
	}
	return nil
}

// hasher abstracts over the four algorithm/mode combinations the CLI
// exposes (blake2b, blake2s, blake2bp, blake2sp) behind one io.Writer +
// hex-digest interface.
type hasher interface {
	io.Writer
	HexSum() string
	Reset() error
}

func newHasher(key, salt, personal []byte) (hasher, error) {
	switch {
	case flags.blake2s && flags.parallel:
		return newBlake2spHasher(key)
	case flags.blake2s:
		return newBlake2sHasher(key, salt, personal)
	case flags.parallel:
		return newBlake2bpHasher(key)
	default:
		return newBlake2bHasher(key, salt, personal)
	}
}

type blake2bHasher struct {
	params *blake2b.Params
	state  *blake2b.State
}

func newBlake2bHasher(key, salt, personal []byte) (*blake2bHasher, error) {
	length := flags.length
	if length == 0 {
		length = blake2b.MaxDigestSize
	}
	p := blake2b.NewParams().DigestLength(length).Key(key).Salt(salt).Personal(personal)
	if flags.fanout != 0 {
		p = p.Fanout(int(flags.fanout))
	}
	if flags.maxDepth != 0 {
		p = p.MaxDepth(int(flags.maxDepth))
	}
	if flags.maxLeafLength != 0 {
		p = p.MaxLeafLength(uint32(flags.maxLeafLength))
	}
	if flags.nodeOffset != 0 {
		p = p.NodeOffset(flags.nodeOffset)
	}
	if flags.nodeDepth != 0 {
		p = p.NodeDepth(int(flags.nodeDepth))
	}
	if flags.innerHashLength != 0 {
		p = p.InnerHashLength(int(flags.innerHashLength))
	}
	if flags.lastNode {
		p = p.LastNode(true)
	}
	h := &blake2bHasher{params: p}
	return h, h.Reset()
}

func (h *blake2bHasher) Write(p []byte) (int, error) { return h.state.Write(p) }
func (h *blake2bHasher) HexSum() string              { return h.state.Finalize().Hex() }
func (h *blake2bHasher) Reset() error {
	st, err := h.params.New()
	if err != nil {
		return err
	}
	h.state = st
	return nil
}

type blake2sHasher struct {
	params *blake2s.Params
	state  *blake2s.State
}

func newBlake2sHasher(key, salt, personal []byte) (*blake2sHasher, error) {
	length := flags.length
	if length == 0 {
		length = blake2s.MaxDigestSize
	}
	p := blake2s.NewParams().DigestLength(length).Key(key).Salt(salt).Personal(personal)
	if flags.fanout != 0 {
		p = p.Fanout(int(flags.fanout))
	}
	if flags.maxDepth != 0 {
		p = p.MaxDepth(int(flags.maxDepth))
	}
	if flags.maxLeafLength != 0 {
		p = p.MaxLeafLength(uint32(flags.maxLeafLength))
	}
	if flags.nodeOffset != 0 {
		p = p.NodeOffset(flags.nodeOffset)
	}
	if flags.nodeDepth != 0 {
		p = p.NodeDepth(int(flags.nodeDepth))
	}
	if flags.innerHashLength != 0 {
		p = p.InnerHashLength(int(flags.innerHashLength))
	}
	if flags.lastNode {
		p = p.LastNode(true)
	}
	h := &blake2sHasher{params: p}
	return h, h.Reset()
}

func (h *blake2sHasher) Write(p []byte) (int, error) { return h.state.Write(p) }
func (h *blake2sHasher) HexSum() string              { return h.state.Finalize().Hex() }
func (h *blake2sHasher) Reset() error {
	st, err := h.params.New()
	if err != nil {
		return err
	}
	h.state = st
	return nil
}

type blake2bpHasher struct {
	params *blake2bp.Params
	buf    []byte
}

func newBlake2bpHasher(key []byte) (*blake2bpHasher, error) {
	length := flags.length
	if length == 0 {
		length = blake2b.MaxDigestSize
	}
	return &blake2bpHasher{params: blake2bp.NewParams().DigestLength(length).Key(key)}, nil
}

func (h *blake2bpHasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}
func (h *blake2bpHasher) HexSum() string {
	d, err := h.params.Hash(h.buf)
	if err != nil {
		logrus.Errorf("blake2bp: %v", err)
		return ""
	}
	return d.Hex()
}
func (h *blake2bpHasher) Reset() error {
	h.buf = h.buf[:0]
	return nil
}

type blake2spHasher struct {
	params *blake2sp.Params
	buf    []byte
}

func newBlake2spHasher(key []byte) (*blake2spHasher, error) {
	length := flags.length
	if length == 0 {
		length = blake2s.MaxDigestSize
	}
	return &blake2spHasher{params: blake2sp.NewParams().DigestLength(length).Key(key)}, nil
}

func (h *blake2spHasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}
func (h *blake2spHasher) HexSum() string {
	d, err := h.params.Hash(h.buf)
	if err != nil {
		logrus.Errorf("blake2sp: %v", err)
		return ""
	}
	return d.Hex()
}
func (h *blake2spHasher) Reset() error {
	h.buf = h.buf[:0]
	return nil
}

func decodeHex(name, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding --%s", name)
	}
	return b, nil
}

func sumPath(h hasher, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer f.Close()

	if flags.useMmap {
		return sumMmapped(h, path, f)
	}
	return sumOne(h, path, f)
}

func sumOne(h hasher, label string, r io.Reader) error {
	if err := h.Reset(); err != nil {
		return errors.Wrap(err, "resetting hasher")
	}
	logrus.Debugf("hashing %s", label)
	if _, err := io.Copy(h, bufio.NewReader(r)); err != nil {
		return errors.Wrap(err, "reading input")
	}
	fmt.Printf("%s  %s\n", h.HexSum(), label)
	return nil
}

// sumMmapped hashes a file through an mmap.Map view rather than
// buffered reads, skipping the copy through a bufio buffer for large
// inputs. Empty files cannot be mapped, so they fall back to sumOne.
func sumMmapped(h hasher, path string, f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "statting input")
	}
	if info.Size() == 0 {
		return sumOne(h, path, f)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return errors.Wrap(err, "mmapping input")
	}
	defer m.Unmap()

	if err := h.Reset(); err != nil {
		return errors.Wrap(err, "resetting hasher")
	}
	logrus.Debugf("mmap-hashing %s (%d bytes)", path, len(m))
	if _, err := h.Write(m); err != nil {
		return errors.Wrap(err, "hashing mapped input")
	}
	fmt.Printf("%s  %s\n", h.HexSum(), path)
	return nil
}
