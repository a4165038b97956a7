package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrEmptyCategory   = errors.New("service category cannot be empty")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrNegativePrice   = errors.New("service price cannot be negative")
)

// Service is a bookable offering of the institute. Immutable for the duration
// of a booking session; the write side goes through the admin commands only.
type Service struct {
	id              uuid.UUID
	name            string
	durationMinutes int
	priceCents      int
	description     string
	category        string
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(name string, durationMinutes, priceCents int, description, category string, now time.Time) (*Service, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		id:              uuid.New(),
		name:            name,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		description:     strings.TrimSpace(description),
		category:        category,
		active:          true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	name string,
	durationMinutes, priceCents int,
	description, category string,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		name:            name,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		description:     description,
		category:        category,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) PriceCents() int      { return s.priceCents }
func (s *Service) Description() string  { return s.description }
func (s *Service) Category() string     { return s.category }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

func (s *Service) Deactivate() { s.active = false }

// Update applies edited fields while keeping identity and timestamps.
func (s *Service) Update(name string, durationMinutes, priceCents int, description, category string) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return ErrEmptyName
	}
	if category == "" {
		return ErrEmptyCategory
	}
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}

	s.name = name
	s.durationMinutes = durationMinutes
	s.priceCents = priceCents
	s.description = strings.TrimSpace(description)
	s.category = category
	return nil
}
