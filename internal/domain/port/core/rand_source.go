package core

// RandSource abstracts the uniform random draw used by the reward engine.
// The production adapter is backed by crypto/rand; tests substitute a fixed
// sequence to make outcomes deterministic.
type RandSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). Used for reel filler items.
	Intn(n int) int
}
