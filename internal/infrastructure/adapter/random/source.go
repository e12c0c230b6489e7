package random

import (
	"crypto/rand"
	"math/big"

	"github.com/skylar-games/case-opener/internal/domain/port/core"
)

// precision of the uniform draw: one part in a million
const precision = 1_000_000

// CryptoSource implements the RandSource port over crypto/rand, so reward
// draws cannot be predicted from process state.
type CryptoSource struct{}

// New creates a crypto-backed random source
func New() *CryptoSource {
	return &CryptoSource{}
}

// Float64 returns a uniform value in [0, 1)
func (s *CryptoSource) Float64() float64 {
	n, err := rand.Int(rand.Reader, big.NewInt(precision))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; land in the middle rather than crash a spin.
		return 0.5
	}
	return float64(n.Int64()) / precision
}

// Intn returns a uniform value in [0, n)
func (s *CryptoSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

var _ core.RandSource = (*CryptoSource)(nil)
