package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/repository"
)

func TestIdentityService_Register(t *testing.T) {
	db := openTestDB(t)
	svc := NewIdentityService(repository.NewGormUserRepository(db))

	u, err := svc.Register(context.Background(), RegisterRequest{
		FullName:  "Alice Smith",
		Email:     "Alice@Example.com",
		Password:  "s3cret",
		Phone:     "+1 555 0100",
		LicenseNo: "DL-12345",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if u.Role != model.UserRoleCustomer {
		t.Fatalf("role = %s, want customer by default", u.Role)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", u.Email)
	}
	if u.PasswordHash == "s3cret" || u.PasswordHash == "" {
		t.Fatalf("password stored in the clear or empty")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestIdentityService_Register_Validation(t *testing.T) {
	db := openTestDB(t)
	svc := NewIdentityService(repository.NewGormUserRepository(db))

	if _, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.c", Password: "x"}); !errors.Is(err, rental.ErrValidation) {
		t.Fatalf("missing name: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "A", Email: "a@b.c", Password: "x", Role: "superuser",
	}); !errors.Is(err, rental.ErrValidation) {
		t.Fatalf("unknown role: expected ErrValidation, got %v", err)
	}
}

func TestIdentityService_Register_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewIdentityService(repository.NewGormUserRepository(db))

	req := RegisterRequest{FullName: "Alice", Email: "alice@example.com", Password: "pw"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, rental.ErrConstraint) {
		t.Fatalf("duplicate email: expected ErrConstraint, got %v", err)
	}
}

func TestIdentityService_Authenticate(t *testing.T) {
	db := openTestDB(t)
	svc := NewIdentityService(repository.NewGormUserRepository(db))

	if _, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Alice", Email: "alice@example.com", Password: "s3cret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("wrong user: %s", u.Email)
	}

	if _, err := svc.Authenticate(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, rental.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret"); !errors.Is(err, rental.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
