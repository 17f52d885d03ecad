package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Статус бронирования: pending -> approved | rejected, других переходов нет.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Статус оплаты живёт отдельно от статуса бронирования.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// bookings
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"not null;index" json:"customer_id"`
	CarID      uint `gorm:"not null;index" json:"car_id"`

	// Чистые календарные даты без времени; диапазон включительный,
	// минимальная аренда — один день (end > start).
	StartDate datatypes.Date `gorm:"type:date;not null" json:"start_date"`
	EndDate   datatypes.Date `gorm:"type:date;not null" json:"end_date"`

	PickupLocation  string `gorm:"type:varchar(255);not null" json:"pickup_location"`
	DropoffLocation string `gorm:"type:varchar(255);not null" json:"dropoff_location"`

	// Сумма считается вызывающей стороной: rate_per_day * число дней включительно.
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	Status        BookingStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"payment_status"`
	PaymentMethod string        `gorm:"type:varchar(32);not null" json:"payment_method"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Навигационные поля (для Preload в деталях/чеке).
	Customer *User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
	Car      *Car  `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"car,omitempty"`
}

// Start возвращает дату начала аренды как time.Time (UTC, полночь).
func (b *Booking) Start() time.Time { return time.Time(b.StartDate) }

// End возвращает дату конца аренды как time.Time (UTC, полночь).
func (b *Booking) End() time.Time { return time.Time(b.EndDate) }
