package recommend

import (
	"math/rand/v2"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

// Sampler draws records uniformly at random without replacement
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler over the given source. A nil source uses a
// randomly seeded one.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample returns min(n, len(records)) distinct records in draw order. The
// input slice is not modified.
func (s *Sampler) Sample(records []movies.Record, n int) []movies.Record {
	if n > len(records) {
		n = len(records)
	}
	if n <= 0 {
		return nil
	}

	pool := make([]movies.Record, len(records))
	copy(pool, records)

	// partial Fisher-Yates: pool[:i] holds the draws so far
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
