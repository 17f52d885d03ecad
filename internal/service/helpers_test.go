package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentacore/car-rental-platform/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{
		FullName:     "Test Customer",
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         model.UserRoleCustomer,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return u
}

func seedCar(t *testing.T, db *gorm.DB, plate string) *model.Car {
	t.Helper()
	c := &model.Car{
		PlateNo:    plate,
		Brand:      "Toyota",
		Model:      "Corolla",
		Type:       "sedan",
		Year:       2022,
		Color:      "white",
		RatePerDay: decimal.RequireFromString("50.00"),
		Seats:      4,
		Status:     model.CarStatusAvailable,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed car: %v", err)
	}
	return c
}

func day(t *testing.T, d int) time.Time {
	t.Helper()
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}
