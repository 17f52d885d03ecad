package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статус автомобиля в парке. Значение меняют только одобрение/отклонение
// бронирования, постановка на обслуживание и явное административное
// редактирование карточки.
type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusRented      CarStatus = "rented"
	CarStatusMaintenance CarStatus = "maintenance"
)

// ValidCarStatus reports whether s is one of the known car statuses.
func ValidCarStatus(s CarStatus) bool {
	switch s {
	case CarStatusAvailable, CarStatusRented, CarStatusMaintenance:
		return true
	}
	return false
}

// cars
type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PlateNo string `gorm:"type:varchar(32);not null;uniqueIndex" json:"plate_no"`
	Brand   string `gorm:"type:varchar(64);not null" json:"brand"`
	Model   string `gorm:"type:varchar(64);not null" json:"model"`

	// Класс кузова: sedan, suv и т.п.
	Type  string `gorm:"type:varchar(32)" json:"type"`
	Year  int    `json:"year"`
	Color string `gorm:"type:varchar(32)" json:"color"`

	RatePerDay decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rate_per_day"`
	Seats      int             `gorm:"not null;default:4" json:"seats"`

	Status CarStatus `gorm:"type:varchar(16);not null;default:'available';index" json:"status"`

	ImagePath string `gorm:"type:varchar(255)" json:"image_path,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
