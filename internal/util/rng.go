package util

import (
	"math/rand"
	"time"
)

// New returns a generator for seed. Zero maps to 1 so a zero value config
// still replays the same duel.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// Seed returns seed unchanged, or a clock based seed when it is zero.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// RunSeed derives the seed of run i in a batch started from base.
func RunSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}
