package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/repository"
)

// CarService — карточки автомобилей. Статусом в обычной жизни управляют
// бронирования и обслуживание; прямое редактирование статуса здесь —
// административный люк, который может разойтись с книгой бронирований.
type CarService struct {
	cars repository.CarRepository
}

func NewCarService(cars repository.CarRepository) *CarService {
	return &CarService{cars: cars}
}

type AddCarRequest struct {
	PlateNo    string
	Brand      string
	Model      string
	Type       string
	Year       int
	Color      string
	RatePerDay decimal.Decimal
	Seats      int
	Status     model.CarStatus
	ImagePath  string
}

func (s *CarService) Add(ctx context.Context, req AddCarRequest) (*model.Car, error) {
	req.PlateNo = strings.TrimSpace(req.PlateNo)
	if req.PlateNo == "" || req.Brand == "" || req.Model == "" {
		return nil, fmt.Errorf("%w: plate, brand and model are required", rental.ErrValidation)
	}
	if !req.RatePerDay.IsPositive() {
		return nil, fmt.Errorf("%w: rate per day must be positive", rental.ErrValidation)
	}
	if req.Seats <= 0 {
		req.Seats = 4
	}
	if req.Status == "" {
		req.Status = model.CarStatusAvailable
	}
	if !model.ValidCarStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown car status %q", rental.ErrValidation, req.Status)
	}

	car := &model.Car{
		PlateNo:    req.PlateNo,
		Brand:      req.Brand,
		Model:      req.Model,
		Type:       req.Type,
		Year:       req.Year,
		Color:      req.Color,
		RatePerDay: req.RatePerDay,
		Seats:      req.Seats,
		Status:     req.Status,
		ImagePath:  req.ImagePath,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) Get(ctx context.Context, id uint) (*model.Car, error) {
	return s.cars.GetByID(ctx, id)
}

func (s *CarService) List(ctx context.Context) ([]model.Car, error) {
	return s.cars.List(ctx)
}

func (s *CarService) ListAvailable(ctx context.Context) ([]model.Car, error) {
	return s.cars.ListAvailable(ctx)
}

// Update применяет структурированный патч: меняются только явно
// перечисленные поля, произвольных ключей нет.
func (s *CarService) Update(ctx context.Context, id uint, patch repository.CarUpdate) error {
	if patch.Empty() {
		return fmt.Errorf("%w: no fields to update", rental.ErrValidation)
	}
	if patch.PlateNo != nil && strings.TrimSpace(*patch.PlateNo) == "" {
		return fmt.Errorf("%w: plate must not be empty", rental.ErrValidation)
	}
	if patch.RatePerDay != nil && !patch.RatePerDay.IsPositive() {
		return fmt.Errorf("%w: rate per day must be positive", rental.ErrValidation)
	}
	if patch.Status != nil && !model.ValidCarStatus(*patch.Status) {
		return fmt.Errorf("%w: unknown car status %q", rental.ErrValidation, *patch.Status)
	}
	return s.cars.Update(ctx, id, patch)
}
