package member

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndGetRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	summary, err := svc.Register(ctx, Member{Name: "Amy", Phone: "0911", Password: "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if summary.Phone != "0911" || summary.Name != "Amy" {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	m, err := svc.GetByPhone(ctx, "0911")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Name != "Amy" || m.Phone != "0911" || m.Password != "x" {
		t.Fatalf("round trip mismatch: %+v", m)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	cases := []Member{
		{Phone: "0911", Password: "x"},
		{Name: "Amy", Password: "x"},
		{Name: "Amy", Phone: "0911"},
		{},
	}
	for _, m := range cases {
		if _, err := svc.Register(ctx, m); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", m, err)
		}
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, Member{Name: "Amy", Phone: "0911", Password: "x"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, Member{Name: "Bob", Phone: "0911", Password: "y"})
	if !errors.Is(err, ErrPhoneExists) {
		t.Fatalf("expected ErrPhoneExists, got %v", err)
	}

	// The first record must be untouched.
	m, err := svc.GetByPhone(ctx, "0911")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Name != "Amy" {
		t.Fatalf("expected Amy, got %q", m.Name)
	}
}

func TestGetUnknownPhone(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	if _, err := svc.GetByPhone(context.Background(), "0000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, Member{Name: "Amy", Phone: "0911", Password: "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Update(ctx, "0911", Patch{Name: "Amy Wang"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	m, err := svc.GetByPhone(ctx, "0911")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Name != "Amy Wang" {
		t.Fatalf("name not updated: %q", m.Name)
	}
	if m.Phone != "0911" || m.Password != "x" {
		t.Fatalf("untouched fields changed: %+v", m)
	}
}

func TestUpdateNothing(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, Member{Name: "Amy", Phone: "0911", Password: "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Update(ctx, "0911", Patch{}); !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdatePhoneRekeys(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, Member{Name: "Amy", Phone: "0911", Password: "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Update(ctx, "0911", Patch{Phone: "0922"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := svc.GetByPhone(ctx, "0911"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old phone still resolves: %v", err)
	}
	m, err := svc.GetByPhone(ctx, "0922")
	if err != nil {
		t.Fatalf("get new phone: %v", err)
	}
	if m.Name != "Amy" || m.Password != "x" {
		t.Fatalf("record lost fields on rekey: %+v", m)
	}
}

func TestUpdatePhoneConflict(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, Member{Name: "Amy", Phone: "0911", Password: "x"}); err != nil {
		t.Fatalf("register amy: %v", err)
	}
	if _, err := svc.Register(ctx, Member{Name: "Bob", Phone: "0922", Password: "y"}); err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if err := svc.Update(ctx, "0911", Patch{Phone: "0922"}); !errors.Is(err, ErrPhoneExists) {
		t.Fatalf("expected ErrPhoneExists, got %v", err)
	}
}
