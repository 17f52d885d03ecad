package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/repository"
)

// MaintenanceService ставит машины на обслуживание и ведёт журнал работ.
// Это внешний по отношению к книге бронирований писатель статуса машины:
// бронирования не трогают значение maintenance, пока их явно не
// одобрят/отклонят.
type MaintenanceService struct {
	db      *gorm.DB
	records repository.MaintenanceRepository
	cars    repository.CarRepository
}

func NewMaintenanceService(
	db *gorm.DB,
	records repository.MaintenanceRepository,
	cars repository.CarRepository,
) *MaintenanceService {
	return &MaintenanceService{db: db, records: records, cars: cars}
}

// Create в одной транзакции переводит машину в maintenance и добавляет
// запись об обслуживании. Либо оба изменения, либо ни одного.
func (s *MaintenanceService) Create(ctx context.Context, carID uint, description string) (*model.Maintenance, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", rental.ErrValidation)
	}

	rec := &model.Maintenance{
		CarID:       carID,
		Description: description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Car{}).
			Where("id = ?", carID).
			Update("status", model.CarStatusMaintenance)
		if res.Error != nil {
			return fmt.Errorf("%w: update car status: %v", rental.ErrPersistence, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: car %d", rental.ErrNotFound, carID)
		}

		if err := tx.Create(rec).Error; err != nil {
			return fmt.Errorf("%w: insert maintenance record: %v", rental.ErrPersistence, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("car_id", carID).
		Uint("maintenance_id", rec.ID).
		Msg("car placed in maintenance")

	return rec, nil
}

// Log добавляет запись об обслуживании без смены статуса машины
// (плановые работы, не выводящие машину из парка).
func (s *MaintenanceService) Log(ctx context.Context, carID uint, description string) (*model.Maintenance, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", rental.ErrValidation)
	}
	if _, err := s.cars.GetByID(ctx, carID); err != nil {
		return nil, fmt.Errorf("car %d: %w", carID, err)
	}

	rec := &model.Maintenance{CarID: carID, Description: description}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List возвращает записи об обслуживании; carID == nil — по всему парку.
func (s *MaintenanceService) List(ctx context.Context, carID *uint) ([]model.Maintenance, error) {
	return s.records.List(ctx, carID)
}
