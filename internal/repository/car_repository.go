package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/model"
)

// CarUpdate — явный структурированный патч карточки автомобиля.
// Заполненные поля перечислены поимённо; произвольных key/value нет.
type CarUpdate struct {
	PlateNo    *string
	Brand      *string
	Model      *string
	Type       *string
	Year       *int
	Color      *string
	RatePerDay *decimal.Decimal
	Seats      *int
	Status     *model.CarStatus
	ImagePath  *string
}

// Empty reports whether the patch carries no fields.
func (u CarUpdate) Empty() bool {
	return u.PlateNo == nil && u.Brand == nil && u.Model == nil &&
		u.Type == nil && u.Year == nil && u.Color == nil &&
		u.RatePerDay == nil && u.Seats == nil && u.Status == nil &&
		u.ImagePath == nil
}

type CarRepository interface {
	// Добавить автомобиль в парк.
	Create(ctx context.Context, car *model.Car) error
	// Найти автомобиль по ID.
	GetByID(ctx context.Context, id uint) (*model.Car, error)
	// Весь парк.
	List(ctx context.Context) ([]model.Car, error)
	// Автомобили со статусом available.
	ListAvailable(ctx context.Context) ([]model.Car, error)
	// Обновить перечисленные в патче поля.
	Update(ctx context.Context, id uint, patch CarUpdate) error
}

type GormCarRepository struct {
	db *gorm.DB
}

func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

func (r *GormCarRepository) Create(ctx context.Context, car *model.Car) error {
	return wrapDBErr("create car", r.db.WithContext(ctx).Create(car).Error)
}

func (r *GormCarRepository) GetByID(ctx context.Context, id uint) (*model.Car, error) {
	var c model.Car
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, wrapDBErr("get car", err)
	}
	return &c, nil
}

func (r *GormCarRepository) List(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&cars).Error; err != nil {
		return nil, wrapDBErr("list cars", err)
	}
	return cars, nil
}

func (r *GormCarRepository) ListAvailable(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	err := r.db.WithContext(ctx).
		Where("status = ?", model.CarStatusAvailable).
		Order("id ASC").
		Find(&cars).Error
	if err != nil {
		return nil, wrapDBErr("list available cars", err)
	}
	return cars, nil
}

func (r *GormCarRepository) Update(ctx context.Context, id uint, patch CarUpdate) error {
	updates := map[string]any{}
	if patch.PlateNo != nil {
		updates["plate_no"] = *patch.PlateNo
	}
	if patch.Brand != nil {
		updates["brand"] = *patch.Brand
	}
	if patch.Model != nil {
		updates["model"] = *patch.Model
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Year != nil {
		updates["year"] = *patch.Year
	}
	if patch.Color != nil {
		updates["color"] = *patch.Color
	}
	if patch.RatePerDay != nil {
		updates["rate_per_day"] = *patch.RatePerDay
	}
	if patch.Seats != nil {
		updates["seats"] = *patch.Seats
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.ImagePath != nil {
		updates["image_path"] = *patch.ImagePath
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.Car{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return wrapDBErr("update car", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapDBErr("update car", gorm.ErrRecordNotFound)
	}
	return nil
}
