package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/repository"
)

// BookingService — книга бронирований: создание заявок и переходы
// pending -> approved | rejected с синхронным обновлением статуса машины.
type BookingService struct {
	db       *gorm.DB
	bookings repository.BookingRepository
	cars     repository.CarRepository
	users    repository.UserRepository

	// Повторная проверка пересечений внутри транзакции одобрения.
	// По умолчанию выключена: одобрение — ручной шлюз, и двойное одобрение
	// исторически не блокировалось.
	strictApproval bool

	// Сверка суммы с rate_per_day * дни при создании. По умолчанию
	// выключена: сумма вызывающей стороны принимается на доверии.
	verifyAmounts bool
}

func NewBookingService(
	db *gorm.DB,
	bookings repository.BookingRepository,
	cars repository.CarRepository,
	users repository.UserRepository,
	strictApproval bool,
	verifyAmounts bool,
) *BookingService {
	return &BookingService{
		db:             db,
		bookings:       bookings,
		cars:           cars,
		users:          users,
		strictApproval: strictApproval,
		verifyAmounts:  verifyAmounts,
	}
}

type CreateBookingRequest struct {
	CustomerID      uint
	CarID           uint
	StartDate       time.Time
	EndDate         time.Time
	PickupLocation  string
	DropoffLocation string
	TotalAmount     decimal.Decimal
	PaymentMethod   string
}

// IsAvailable проверяет, свободна ли машина на включительный диапазон дат:
// любое pending/approved бронирование с пересечением делает её занятой.
// Статус maintenance здесь сознательно не учитывается — это отдельный
// фильтр по карточке машины на стороне вызывающего.
func (s *BookingService) IsAvailable(ctx context.Context, carID uint, r rental.DateRange) (bool, error) {
	conflicts, err := s.bookings.ListOverlapping(ctx, carID, r.Start, r.End)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// Create заводит бронирование в статусе pending/pending. Доступность здесь
// не проверяется — вызывающая сторона обязана сперва спросить IsAvailable
// (между проверкой и вставкой блокировки нет, конфликт разрешается на этапе
// одобрения).
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*model.Booking, error) {
	r, err := rental.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.PickupLocation == "" || req.DropoffLocation == "" {
		return nil, fmt.Errorf("%w: pickup and dropoff locations are required", rental.ErrValidation)
	}
	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", rental.ErrValidation)
	}

	if _, err := s.users.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, err)
	}
	car, err := s.cars.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, fmt.Errorf("car %d: %w", req.CarID, err)
	}

	if s.verifyAmounts {
		expected := rental.Quote(car.RatePerDay, r)
		if !expected.Equal(req.TotalAmount) {
			return nil, fmt.Errorf("%w: expected %s, got %s",
				rental.ErrAmountMismatch, expected.StringFixed(2), req.TotalAmount.StringFixed(2))
		}
	}

	booking := &model.Booking{
		CustomerID:      req.CustomerID,
		CarID:           req.CarID,
		StartDate:       datatypes.Date(r.Start),
		EndDate:         datatypes.Date(r.End),
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		TotalAmount:     req.TotalAmount,
		Status:          model.BookingStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	log.Info().
		Uint("booking_id", booking.ID).
		Uint("customer_id", booking.CustomerID).
		Uint("car_id", booking.CarID).
		Str("total", booking.TotalAmount.StringFixed(2)).
		Msg("booking created")

	return booking, nil
}

// SetStatus переводит pending-бронирование в approved или rejected и в той же
// транзакции синхронизирует статус машины: approved -> rented,
// rejected -> available. Либо фиксируются оба изменения, либо ни одного.
func (s *BookingService) SetStatus(ctx context.Context, bookingID uint, status model.BookingStatus) error {
	if status != model.BookingStatusApproved && status != model.BookingStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected, got %q", rental.ErrValidation, status)
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("booking %d: %w", bookingID, err)
	}
	if booking.Status != model.BookingStatusPending {
		return fmt.Errorf("%w: booking %d already %s", rental.ErrValidation, bookingID, booking.Status)
	}

	carStatus := model.CarStatusAvailable
	if status == model.BookingStatusApproved {
		carStatus = model.CarStatusRented
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.strictApproval && status == model.BookingStatusApproved {
			var conflicts int64
			err := tx.Model(&model.Booking{}).
				Where("car_id = ? AND id <> ?", booking.CarID, booking.ID).
				Where("status IN ?", []model.BookingStatus{model.BookingStatusPending, model.BookingStatusApproved}).
				Where("start_date <= ? AND end_date >= ?", booking.End(), booking.Start()).
				Count(&conflicts).Error
			if err != nil {
				return fmt.Errorf("%w: recheck availability: %v", rental.ErrPersistence, err)
			}
			if conflicts > 0 {
				return fmt.Errorf("%w: %d conflicting bookings", rental.ErrCarUnavailable, conflicts)
			}
		}

		res := tx.Model(&model.Booking{}).
			Where("id = ?", booking.ID).
			Update("status", status)
		if res.Error != nil {
			return fmt.Errorf("%w: update booking status: %v", rental.ErrPersistence, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: booking %d", rental.ErrNotFound, booking.ID)
		}

		res = tx.Model(&model.Car{}).
			Where("id = ?", booking.CarID).
			Update("status", carStatus)
		if res.Error != nil {
			return fmt.Errorf("%w: update car status: %v", rental.ErrPersistence, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: car %d", rental.ErrNotFound, booking.CarID)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Uint("booking_id", booking.ID).
		Uint("car_id", booking.CarID).
		Str("status", string(status)).
		Str("car_status", string(carStatus)).
		Msg("booking status updated")

	return nil
}

// GetDetails возвращает бронирование вместе с клиентом и автомобилем —
// данные для чека и отчётов, только чтение.
func (s *BookingService) GetDetails(ctx context.Context, bookingID uint) (*model.Booking, error) {
	return s.bookings.GetDetails(ctx, bookingID)
}

// ListByCustomer — бронирования клиента с данными автомобиля.
func (s *BookingService) ListByCustomer(ctx context.Context, customerID uint) ([]model.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}
