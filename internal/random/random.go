package random

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"strings"
)

// Join codes avoid ambiguous characters (0/O, 1/I/L).
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Rand is the interface for a random source
type Rand interface {
	Intn(n int) int
}

// CryptoRand is a Rand implementation seeded from crypto/rand
type CryptoRand struct {
	r *mathrand.Rand
}

// NewCryptoRand creates a new CryptoRand with a cryptographically random seed
func NewCryptoRand() *CryptoRand {
	seedBytes := make([]byte, 8)

	if _, err := cryptoRand.Read(seedBytes); err != nil {
		return &CryptoRand{r: mathrand.New(mathrand.NewSource(1))}
	}

	seed := int64(binary.LittleEndian.Uint64(seedBytes))
	return &CryptoRand{r: mathrand.New(mathrand.NewSource(seed))}
}

// Intn returns a random number in [0, n)
func (c *CryptoRand) Intn(n int) int {
	return c.r.Intn(n)
}

// JoinCode generates a short uppercase code of the given length
// from the unambiguous alphabet.
func JoinCode(r Rand, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(joinCodeAlphabet[r.Intn(len(joinCodeAlphabet))])
	}
	return b.String()
}
