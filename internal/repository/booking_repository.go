package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
)

// Статусы, блокирующие машину: отклонённые бронирования доступности
// не мешают.
var blockingStatuses = []model.BookingStatus{
	model.BookingStatusPending,
	model.BookingStatusApproved,
}

type BookingRepository interface {
	// Создать новое бронирование.
	Create(ctx context.Context, booking *model.Booking) error
	// Получить бронирование по ID.
	GetByID(ctx context.Context, id uint) (*model.Booking, error)
	// Бронирование вместе с клиентом и автомобилем (для чека/отчёта).
	GetDetails(ctx context.Context, id uint) (*model.Booking, error)
	// Pending/approved бронирования машины, пересекающие включительный
	// диапазон [start, end] (закрытые интервалы: касание — пересечение).
	ListOverlapping(ctx context.Context, carID uint, start, end time.Time) ([]model.Booking, error)
	// Бронирования клиента, новые сверху, с данными автомобиля.
	ListByCustomer(ctx context.Context, customerID uint) ([]model.Booking, error)
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return wrapDBErr("create booking", r.db.WithContext(ctx).Create(booking).Error)
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, wrapDBErr("get booking", err)
	}
	return &b, nil
}

func (r *GormBookingRepository) GetDetails(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Car").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, wrapDBErr("get booking details", err)
	}
	return &b, nil
}

func (r *GormBookingRepository) ListOverlapping(
	ctx context.Context,
	carID uint,
	start, end time.Time,
) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Where("status IN ?", blockingStatuses).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Find(&bookings).Error
	if err != nil {
		return nil, wrapDBErr("list overlapping bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByCustomer(ctx context.Context, customerID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, wrapDBErr("list customer bookings", err)
	}
	return bookings, nil
}
