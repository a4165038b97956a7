// Package availability provides the slot availability implementations
// behind the schedule generator.
package availability

import (
	"context"
	"math/rand"
	"sync"

	"institut-booking/internal/domain/schedule"
)

// RandomProvider marks each slot available with a fixed probability. It is
// the display-side default: availability is advisory, not a reservation.
type RandomProvider struct {
	mu   sync.Mutex
	rng  *rand.Rand
	rate float64
}

// NewRandomProvider builds a provider with the given availability rate in
// [0, 1]. Pass a fixed seed in tests for deterministic output.
func NewRandomProvider(rate float64, seed int64) *RandomProvider {
	return &RandomProvider{
		rng:  rand.New(rand.NewSource(seed)),
		rate: rate,
	}
}

func (p *RandomProvider) Available(_ context.Context, _ schedule.BookingDate, _ schedule.SlotTime) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < p.rate, nil
}
