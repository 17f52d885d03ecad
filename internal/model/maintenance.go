package model

import "time"

// maintenance — записи об обслуживании автомобиля.
type Maintenance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CarID       uint   `gorm:"not null;index" json:"car_id"`
	Description string `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Car *Car `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"car,omitempty"`
}

// TableName keeps the historical singular table name.
func (Maintenance) TableName() string { return "maintenance" }
