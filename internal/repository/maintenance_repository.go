package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
)

type MaintenanceRepository interface {
	// Добавить запись об обслуживании (без смены статуса машины).
	Create(ctx context.Context, rec *model.Maintenance) error
	// Записи об обслуживании с данными автомобиля; carID == nil — все.
	List(ctx context.Context, carID *uint) ([]model.Maintenance, error)
}

type GormMaintenanceRepository struct {
	db *gorm.DB
}

func NewGormMaintenanceRepository(db *gorm.DB) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

func (r *GormMaintenanceRepository) Create(ctx context.Context, rec *model.Maintenance) error {
	return wrapDBErr("create maintenance record", r.db.WithContext(ctx).Create(rec).Error)
}

func (r *GormMaintenanceRepository) List(ctx context.Context, carID *uint) ([]model.Maintenance, error) {
	q := r.db.WithContext(ctx).Model(&model.Maintenance{}).Preload("Car")
	if carID != nil {
		q = q.Where("car_id = ?", *carID)
	}

	var records []model.Maintenance
	if err := q.Order("id ASC").Find(&records).Error; err != nil {
		return nil, wrapDBErr("list maintenance records", err)
	}
	return records, nil
}
