package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

func TestUserService_Promote(t *testing.T) {
	repo := newStubUserRepo()
	auth := newTestAuthService(repo)
	svc := NewUserService(repo, zerolog.Nop())

	reg, err := auth.Register(context.Background(), "Kim", "kim@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	promoted, err := svc.Promote(context.Background(), reg.User.ID)
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if promoted.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", promoted.Role)
	}

	stored, err := repo.FindByID(context.Background(), reg.User.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Role != domain.RoleAdmin {
		t.Fatalf("promotion not persisted, role is %s", stored.Role)
	}
}

func TestUserService_Promote_AlreadyAdmin(t *testing.T) {
	repo := newStubUserRepo()
	auth := newTestAuthService(repo)
	svc := NewUserService(repo, zerolog.Nop())

	reg, _ := auth.Register(context.Background(), "Lee", "lee@example.com", "pass")
	if _, err := svc.Promote(context.Background(), reg.User.ID); err != nil {
		t.Fatalf("first promote failed: %v", err)
	}
	if _, err := svc.Promote(context.Background(), reg.User.ID); !errors.Is(err, domain.ErrAlreadyAdmin) {
		t.Fatalf("expected ErrAlreadyAdmin, got %v", err)
	}
}

func TestUserService_Promote_InvalidID(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Promote(context.Background(), "short"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestUserService_Promote_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Promote(context.Background(), fmt.Sprintf("%024x", 42)); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
