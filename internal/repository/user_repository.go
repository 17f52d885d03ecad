package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
)

type UserRepository interface {
	// Создать пользователя.
	Create(ctx context.Context, user *model.User) error
	// Найти пользователя по ID.
	GetByID(ctx context.Context, id uint) (*model.User, error)
	// Найти пользователя по email (для аутентификации).
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Все пользователи.
	List(ctx context.Context) ([]model.User, error)
}

// Реализация на GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User) error {
	return wrapDBErr("create user", r.db.WithContext(ctx).Create(user).Error)
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrapDBErr("get user", err)
	}
	return &u, nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, wrapDBErr("get user by email", err)
	}
	return &u, nil
}

func (r *GormUserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, wrapDBErr("list users", err)
	}
	return users, nil
}
