package theme

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// RandomThemeIDPrefix starts every generated theme id.
const RandomThemeIDPrefix = "random-"

// Randomizer builds themes whose colors are sampled key by key from the
// built-in registry. The mix is not harmonised.
type Randomizer struct {
	mu   sync.Mutex
	rng  *rand.Rand
	now  func() time.Time
	last int64
}

// RandomizerOption customises a Randomizer.
type RandomizerOption func(*Randomizer)

// WithRandSource replaces the random source, mainly for tests.
func WithRandSource(src rand.Source) RandomizerOption {
	return func(r *Randomizer) {
		r.rng = rand.New(src)
	}
}

// WithClock replaces the timestamp source used for ids.
func WithClock(now func() time.Time) RandomizerOption {
	return func(r *Randomizer) {
		r.now = now
	}
}

// NewRandomizer returns a Randomizer seeded from the wall clock.
func NewRandomizer(opts ...RandomizerOption) *Randomizer {
	r := &Randomizer{
		rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Theme synthesises a new theme. Ids are unique within the process even when
// two calls observe the same timestamp.
func (r *Randomizer) Theme() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()

	stamp := r.now().UnixNano()
	if stamp <= r.last {
		stamp = r.last + 1
	}
	r.last = stamp

	var colors Colors
	for _, key := range ColorKeys() {
		donor := builtinThemes[r.rng.IntN(len(builtinThemes))]
		colors = colors.With(key, donor.Colors.Get(key))
	}

	return Theme{
		ID:          fmt.Sprintf("%s%d", RandomThemeIDPrefix, stamp),
		Name:        "Random",
		Description: "Colors sampled from the built-in themes",
		Colors:      colors,
	}
}
