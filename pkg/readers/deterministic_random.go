// Package readers provides deterministic pseudo-random sources for tests that
// need repeatable operation schedules and element sequences.
package readers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"

	"hop.computer/containers/pkg"
	"hop.computer/containers/pkg/must"
)

var iv = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
var mask = [aes.BlockSize]byte{0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. It will return a deterministic byte sequence based
// on the seed and the total number of bytes read. The number of calls does not
// matter. It cannot fail.
func (c *ctrReader) Read(p []byte) (n int, err error) {
	for i := 0; i < len(p); i += len(mask) {
		chunk := p[i:]
		c.stream.XORKeyStream(chunk, mask[0:min(len(chunk), len(mask))])
	}
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

// DeterministicRandomReader returns a "random" reader based on the seed
// provided, using AES in CTR mode. The key is based on the seed. The IV is
// static.
func DeterministicRandomReader(seed uint64) io.Reader {
	key := [16]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		pkg.Panicf("unable to create new aes: %s", err)
	}
	return &ctrReader{
		stream: cipher.NewCTR(block, iv[:]),
	}
}

// Source draws integers from a deterministic reader.
type Source struct {
	r io.Reader
}

// NewSource returns a Source seeded with seed. Two sources with the same seed
// produce the same values.
func NewSource(seed uint64) *Source {
	return &Source{r: DeterministicRandomReader(seed)}
}

// Intn returns a value in [0, n). It panics if n <= 0. The result is slightly
// biased for n that are not powers of two, which is fine for tests.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		pkg.Panicf("Intn: n must be positive, got %d", n)
	}
	var buf [8]byte
	_ = must.Do(s.r.Read(buf[:]))
	return int(binary.LittleEndian.Uint64(buf[:]) % uint64(n))
}

// Ints returns count values, each in [0, bound).
func (s *Source) Ints(count, bound int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = s.Intn(bound)
	}
	return out
}

// DeterministicCoinFlipper is a biased coin. With bits = b, heads comes up
// with probability 1/2^b.
type DeterministicCoinFlipper struct {
	r    io.Reader
	bits int
}

// Flip flips the (biased) coin. True represents heads.
func (f *DeterministicCoinFlipper) Flip() bool {
	var buf [1]byte
	_ = must.Do(f.r.Read(buf[:]))

	// Only the all-zero case of the lowest n bits is heads
	mask := byte((1 << f.bits) - 1)
	return buf[0]&mask == 0
}

// NewDeterministicCoinFlipper returns a coin flipper seeded with seed. bits
// must be in [0, 7].
func NewDeterministicCoinFlipper(seed uint64, bits int) *DeterministicCoinFlipper {
	if bits > 7 || bits < 0 {
		pkg.Panicf("bits must be in the range 0-7, got %d", bits)
	}
	return &DeterministicCoinFlipper{
		r:    DeterministicRandomReader(seed),
		bits: bits,
	}
}
