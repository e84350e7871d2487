package member

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	members map[string]Member
}

// NewMemoryRepository builds an in-memory member store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{members: make(map[string]Member)}
}

func (r *memoryRepository) Create(_ context.Context, m Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.members[m.Phone]; exists {
		return ErrPhoneExists
	}
	r.members[m.Phone] = m
	return nil
}

func (r *memoryRepository) FindByPhone(_ context.Context, phone string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[phone]
	if !ok {
		return Member{}, ErrNotFound
	}
	return m, nil
}

func (r *memoryRepository) FindByCredentials(_ context.Context, phone, password string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[phone]
	if !ok || m.Password != password {
		return Member{}, ErrNotFound
	}
	return m, nil
}

func (r *memoryRepository) Update(_ context.Context, phone string, patch Patch) error {
	if patch.IsEmpty() {
		return ErrNothingToUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[phone]
	if !ok {
		// Mirrors the SQL path: updating an unknown phone is acknowledged.
		return nil
	}
	if patch.Name != "" {
		m.Name = patch.Name
	}
	if patch.Password != "" {
		m.Password = patch.Password
	}
	if patch.Phone != "" && patch.Phone != phone {
		if _, exists := r.members[patch.Phone]; exists {
			return ErrPhoneExists
		}
		delete(r.members, phone)
		m.Phone = patch.Phone
		r.members[patch.Phone] = m
		return nil
	}
	r.members[phone] = m
	return nil
}
