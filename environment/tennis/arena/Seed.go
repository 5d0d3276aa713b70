package arena

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
)

// Seed derives the seed of a named arena from the seed of a run so that
// arenas are reproducible independently of how many arenas are run
func Seed(base uint64, name string) uint64 {
	return xxhash.Sum64String(name + "/" + strconv.FormatUint(base, 10))
}

// CourtSeed returns the seed of the court's serve in an arena seeded
// with seed
func CourtSeed(seed uint64) uint64 {
	return Seed(seed, "court")
}

// StarterSeed returns the seed of the start positions of the racket on
// side in an arena seeded with seed
func StarterSeed(seed uint64, side tennis.Side) uint64 {
	return Seed(seed, "starter/"+side.String())
}

// PolicySeed returns the seed of the policy playing on side in an arena
// seeded with seed
func PolicySeed(seed uint64, side tennis.Side) uint64 {
	return Seed(seed, "policy/"+side.String())
}
