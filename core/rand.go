package core

// Rand is the random source injected into everything that draws random
// values. *math/rand.Rand satisfies it; tests substitute scripted sources
// for deterministic replay.
type Rand interface {
	// Intn returns a uniformly distributed int in [0, n)
	Intn(n int) int
}
