package genesis

import (
	"fmt"
	"math/rand"
	"time"

	"theoverse/internal/domain"
	"theoverse/internal/ports"
)

// Result captures the outcome of a registration attempt.
type Result struct {
	Acolyte domain.Acolyte
	// Created is false when the user was already registered; the existing
	// record (and its original power pick) is returned untouched.
	Created bool
}

// Service handles acolyte onboarding: power selection and registration.
type Service struct {
	acolytes ports.AcolyteStore
	rng      *rand.Rand
}

// NewService constructs a genesis service over the given registry.
// acolytes must be non-nil; rng may be nil to use a time-seeded default.
func NewService(acolytes ports.AcolyteStore, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		acolytes: acolytes,
		rng:      rng,
	}
}

// Lookup returns the acolyte registered for the given user id, if any.
func (s *Service) Lookup(userID string) (domain.Acolyte, bool) {
	acolyte, err := s.acolytes.Find(userID)
	if err != nil {
		return domain.Acolyte{}, false
	}
	return acolyte, true
}

// PowerOptions returns the starting power roster in a fresh random order.
func (s *Service) PowerOptions() []domain.Power {
	return domain.ShuffledPowers(s.rng)
}

// Register completes genesis for a user. Registering an already-registered
// user is a no-op returning the existing record, so a stale select menu or a
// double-click can never overwrite the original power pick.
func (s *Service) Register(userID, name, power string) (Result, error) {
	if s.acolytes == nil {
		return Result{}, fmt.Errorf("genesis service not configured")
	}
	if !domain.IsKnownPower(power) {
		return Result{}, fmt.Errorf("unknown power %q", power)
	}

	if existing, err := s.acolytes.Find(userID); err == nil {
		return Result{Acolyte: existing, Created: false}, nil
	}

	acolyte, err := s.acolytes.Register(domain.NewAcolyte(userID, name, power))
	if err != nil {
		return Result{}, fmt.Errorf("failed to register acolyte: %w", err)
	}
	return Result{Acolyte: acolyte, Created: true}, nil
}
