package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/member-api/member_api/internal/member"
)

// Service is the authentication gate: it validates login credentials and
// resolves verified token identities to member profiles.
type Service struct {
	members member.Repository
}

// NewService creates an authentication gate over the member store.
func NewService(members member.Repository) *Service {
	return &Service{members: members}
}

// Login matches phone and password in a single lookup. Any miss, for
// whatever reason, is ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, phone, password string) (member.Summary, error) {
	if phone == "" || password == "" {
		return member.Summary{}, fmt.Errorf("%w: phone and password are required", member.ErrValidation)
	}

	m, err := s.members.FindByCredentials(ctx, phone, password)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			return member.Summary{}, ErrInvalidCredentials
		}
		return member.Summary{}, err
	}
	return m.Summary(), nil
}

// Profile resolves a verified identity to its stored summary. The record may
// have disappeared since the token was issued, in which case the member
// store's ErrNotFound passes through.
func (s *Service) Profile(ctx context.Context, id Identity) (member.Summary, error) {
	m, err := s.members.FindByPhone(ctx, id.Phone)
	if err != nil {
		return member.Summary{}, err
	}
	return m.Summary(), nil
}
