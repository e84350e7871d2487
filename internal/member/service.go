package member

import (
	"context"
	"errors"
	"fmt"
)

// Service is the member directory: registration, lookup and partial update
// with phone uniqueness enforcement.
type Service struct {
	repo Repository
}

// NewService creates a new member directory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a member record after confirming the phone is unused.
// The lookup only buys a better error message; the storage layer's unique
// constraint remains the authoritative guard when two registrations race.
func (s *Service) Register(ctx context.Context, m Member) (Summary, error) {
	if m.Name == "" || m.Phone == "" || m.Password == "" {
		return Summary{}, fmt.Errorf("%w: name, phone and password are required", ErrValidation)
	}

	if _, err := s.repo.FindByPhone(ctx, m.Phone); err == nil {
		return Summary{}, ErrPhoneExists
	} else if !errors.Is(err, ErrNotFound) {
		return Summary{}, err
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Summary{}, err
	}
	return m.Summary(), nil
}

// GetByPhone returns the full stored record for a phone number.
func (s *Service) GetByPhone(ctx context.Context, phone string) (Member, error) {
	return s.repo.FindByPhone(ctx, phone)
}

// Update applies the non-empty patch fields to the record keyed by phone.
func (s *Service) Update(ctx context.Context, phone string, patch Patch) error {
	if patch.IsEmpty() {
		return ErrNothingToUpdate
	}
	return s.repo.Update(ctx, phone, patch)
}
