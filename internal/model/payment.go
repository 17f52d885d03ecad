package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// payments — журнал только на добавление; по одному бронированию может быть
// несколько записей, признак "оплачено" висит на самом бронировании.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"not null;index" json:"booking_id"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`

	// Внешняя ссылка на платёж (генерируется при записи).
	TxRef string `gorm:"type:varchar(64);not null;uniqueIndex" json:"tx_ref"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Booking *Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"booking,omitempty"`
}
