package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/repository"
)

// PaymentService ведёт журнал платежей. Записи только добавляются;
// признак "оплачено" живёт на бронировании и взводится идемпотентно.
type PaymentService struct {
	db       *gorm.DB
	payments repository.PaymentRepository
	bookings repository.BookingRepository
}

func NewPaymentService(
	db *gorm.DB,
	payments repository.PaymentRepository,
	bookings repository.BookingRepository,
) *PaymentService {
	return &PaymentService{db: db, payments: payments, bookings: bookings}
}

// Record в одной транзакции добавляет платёж и переводит payment_status
// бронирования в paid. Сверки накопленной суммы с total_amount нет:
// любой положительный платёж помечает бронирование оплаченным.
func (s *PaymentService) Record(ctx context.Context, bookingID uint, amount decimal.Decimal) (*model.Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", rental.ErrValidation)
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("booking %d: %w", bookingID, err)
	}

	payment := &model.Payment{
		BookingID: bookingID,
		Amount:    amount,
		TxRef:     uuid.NewString(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("%w: insert payment: %v", rental.ErrPersistence, err)
		}

		res := tx.Model(&model.Booking{}).
			Where("id = ?", bookingID).
			Update("payment_status", model.PaymentStatusPaid)
		if res.Error != nil {
			return fmt.Errorf("%w: update payment status: %v", rental.ErrPersistence, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: booking %d", rental.ErrNotFound, bookingID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("booking_id", bookingID).
		Uint("payment_id", payment.ID).
		Str("amount", amount.StringFixed(2)).
		Str("tx_ref", payment.TxRef).
		Msg("payment recorded")

	return payment, nil
}

// History возвращает платежи; bookingID == nil — весь журнал.
func (s *PaymentService) History(ctx context.Context, bookingID *uint) ([]model.Payment, error) {
	return s.payments.List(ctx, bookingID)
}
