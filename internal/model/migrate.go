package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей прокатного ядра.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Car{},
		&Booking{},
		&Payment{},
		&Maintenance{},
	)
}
