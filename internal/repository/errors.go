package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentacore/car-rental-platform/internal/rental"
)

// wrapDBErr переводит ошибки GORM в таксономию ядра на границе репозитория.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, rental.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %v", op, rental.ErrConstraint, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, rental.ErrPersistence, err)
	}
}
