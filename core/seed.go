package core


import (
	"math/rand"
	"sync"
)


// A master randomness stream handing out seeds.
// Every stream derived from the same master seed in the same order is
// identical from one run to the other, while two derived streams differ.
//
type SeedSource struct {
	lock           sync.Mutex
	seedGenerator  *rand.Rand
}

func NewSeedSource(masterSeed int64) *SeedSource {
	return &SeedSource{
		seedGenerator: rand.New(rand.NewSource(masterSeed)),
	}
}

func (this *SeedSource) Seed() int64 {
	this.lock.Lock()
	defer this.lock.Unlock()

	return this.seedGenerator.Int63()
}

// Return a new stream owned by the caller only.
//
func (this *SeedSource) Derive() *rand.Rand {
	return rand.New(rand.NewSource(this.Seed()))
}
