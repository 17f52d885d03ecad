package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
)

type PaymentRepository interface {
	// История платежей; bookingID == nil — все платежи.
	List(ctx context.Context, bookingID *uint) ([]model.Payment, error)
}

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) List(ctx context.Context, bookingID *uint) ([]model.Payment, error) {
	q := r.db.WithContext(ctx).Model(&model.Payment{})
	if bookingID != nil {
		q = q.Where("booking_id = ?", *bookingID)
	}

	var payments []model.Payment
	if err := q.Order("id ASC").Find(&payments).Error; err != nil {
		return nil, wrapDBErr("list payments", err)
	}
	return payments, nil
}
