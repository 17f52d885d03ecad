package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/repository"
)

// IdentityService — регистрация и аутентификация. Ядро бронирований ему
// доверяет customer_id без повторной проверки личности.
type IdentityService struct {
	users repository.UserRepository
}

func NewIdentityService(users repository.UserRepository) *IdentityService {
	return &IdentityService{users: users}
}

type RegisterRequest struct {
	FullName  string
	Email     string
	Password  string
	Role      model.UserRole
	Phone     string
	Address   string
	LicenseNo string
}

// Register создаёт пользователя. Пароль сразу хэшируется bcrypt —
// открытым он нигде не хранится.
func (s *IdentityService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: full name, email and password are required", rental.ErrValidation)
	}
	if req.Role == "" {
		req.Role = model.UserRoleCustomer
	}
	if !model.ValidUserRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", rental.ErrValidation, req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
		Address:      req.Address,
		LicenseNo:    req.LicenseNo,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate проверяет пару email/пароль. Несуществующий email и неверный
// пароль неразличимы для вызывающего.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, rental.ErrNotFound) {
			return nil, rental.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, rental.ErrInvalidCredentials
	}
	return u, nil
}

// ListUsers — все пользователи (административный экран).
func (s *IdentityService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
