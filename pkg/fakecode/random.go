package fakecode

import "math/rand/v2"

// Rand is the source of template choices. *rand.Rand satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewRand returns a PCG generator. When seeded is false a fresh seed is
// drawn; the seed in use is returned either way so a run can be replayed.
func NewRand(seed int64, seeded bool) (*rand.Rand, int64) {
	if !seeded {
		seed = rand.Int64()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)), seed
}

func pick[T any](rng Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
