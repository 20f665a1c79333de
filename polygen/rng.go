package polygen

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
	"golang.org/x/exp/rand"
)

// seedLabel domain-separates the seed expansion from any other SHAKE use.
const seedLabel = "polybench/prng/v1"

// prngSource adapts a lattigo PRNG byte stream to rand.Source, so the same
// deterministic stream feeds uniform draws and the Dirichlet sampler alike.
type prngSource struct {
	prng utils.PRNG
	buf  [8]byte
}

func (s *prngSource) Uint64() uint64 {
	if _, err := io.ReadFull(s.prng, s.buf[:]); err != nil {
		// KeyedPRNG is an in-memory XOF; a short read means memory
		// corruption, not a recoverable condition.
		panic(fmt.Errorf("polygen: prng read: %w", err))
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Seed is required by rand.Source; the stream is fixed at construction.
func (s *prngSource) Seed(uint64) {}

// expandSeed stretches the caller seed into a PRNG key via SHAKE-256.
func expandSeed(seed int64) []byte {
	h := sha3.NewShake256()
	h.Write([]byte(seedLabel))
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	h.Write(b[:])
	key := make([]byte, 32)
	if _, err := h.Read(key); err != nil {
		panic(fmt.Errorf("polygen: seed expansion: %w", err))
	}
	return key
}

// newSource returns the random source for one generation call: keyed and
// deterministic when a seed is supplied, crypto-seeded otherwise.
func newSource(seed *int64) (rand.Source, error) {
	if seed == nil {
		prng, err := utils.NewPRNG()
		if err != nil {
			return nil, fmt.Errorf("polygen: init prng: %w", err)
		}
		return &prngSource{prng: prng}, nil
	}
	prng, err := utils.NewKeyedPRNG(expandSeed(*seed))
	if err != nil {
		return nil, fmt.Errorf("polygen: init keyed prng: %w", err)
	}
	return &prngSource{prng: prng}, nil
}
