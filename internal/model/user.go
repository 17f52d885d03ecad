package model

import (
	"time"
)

// Роль пользователя в системе проката.
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleStaff    UserRole = "staff"
	UserRoleAdmin    UserRole = "admin"
)

// ValidUserRole reports whether r is one of the known roles.
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleCustomer, UserRoleStaff, UserRoleAdmin:
		return true
	}
	return false
}

// users
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`

	// Храним только bcrypt-хэш, открытый пароль никогда не пишем в БД.
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	Role UserRole `gorm:"type:varchar(32);not null;default:'customer';index" json:"role"`

	Phone     string `gorm:"type:varchar(32)" json:"phone"`
	Address   string `gorm:"type:text" json:"address"`
	LicenseNo string `gorm:"type:varchar(64)" json:"license_no"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
