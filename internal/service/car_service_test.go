package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/repository"
)

func TestCarService_Add_Defaults(t *testing.T) {
	db := openTestDB(t)
	svc := NewCarService(repository.NewGormCarRepository(db))

	car, err := svc.Add(context.Background(), AddCarRequest{
		PlateNo:    "BB-0001",
		Brand:      "Honda",
		Model:      "Civic",
		RatePerDay: decimal.RequireFromString("45.50"),
	})
	if err != nil {
		t.Fatalf("add car: %v", err)
	}
	if car.Seats != 4 {
		t.Fatalf("seats = %d, want default 4", car.Seats)
	}
	if car.Status != model.CarStatusAvailable {
		t.Fatalf("status = %s, want available by default", car.Status)
	}
}

func TestCarService_Add_Validation(t *testing.T) {
	db := openTestDB(t)
	svc := NewCarService(repository.NewGormCarRepository(db))

	if _, err := svc.Add(context.Background(), AddCarRequest{
		Brand: "Honda", Model: "Civic", RatePerDay: decimal.RequireFromString("45.50"),
	}); !errors.Is(err, rental.ErrValidation) {
		t.Fatalf("missing plate: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Add(context.Background(), AddCarRequest{
		PlateNo: "BB-0002", Brand: "Honda", Model: "Civic", RatePerDay: decimal.Zero,
	}); !errors.Is(err, rental.ErrValidation) {
		t.Fatalf("zero rate: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Add(context.Background(), AddCarRequest{
		PlateNo: "BB-0003", Brand: "Honda", Model: "Civic",
		RatePerDay: decimal.RequireFromString("45.50"), Status: "scrapped",
	}); !errors.Is(err, rental.ErrValidation) {
		t.Fatalf("unknown status: expected ErrValidation, got %v", err)
	}
}

func TestCarService_Add_DuplicatePlate(t *testing.T) {
	db := openTestDB(t)
	svc := NewCarService(repository.NewGormCarRepository(db))

	req := AddCarRequest{
		PlateNo: "BB-0001", Brand: "Honda", Model: "Civic",
		RatePerDay: decimal.RequireFromString("45.50"),
	}
	if _, err := svc.Add(context.Background(), req); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(context.Background(), req); !errors.Is(err, rental.ErrConstraint) {
		t.Fatalf("duplicate plate: expected ErrConstraint, got %v", err)
	}
}

func TestCarService_ListAvailable(t *testing.T) {
	db := openTestDB(t)
	svc := NewCarService(repository.NewGormCarRepository(db))

	available := seedCar(t, db, "BB-0001")
	rented := seedCar(t, db, "BB-0002")
	if err := db.Model(&model.Car{}).Where("id = ?", rented.ID).
		Update("status", model.CarStatusRented).Error; err != nil {
		t.Fatalf("mark rented: %v", err)
	}
	inShop := seedCar(t, db, "BB-0003")
	if err := db.Model(&model.Car{}).Where("id = ?", inShop.ID).
		Update("status", model.CarStatusMaintenance).Error; err != nil {
		t.Fatalf("mark maintenance: %v", err)
	}

	cars, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(cars) != 1 || cars[0].ID != available.ID {
		t.Fatalf("available cars wrong: %+v", cars)
	}
}

func TestCarService_Update_Structured(t *testing.T) {
	db := openTestDB(t)
	svc := NewCarService(repository.NewGormCarRepository(db))
	car := seedCar(t, db, "BB-0001")

	rate := decimal.RequireFromString("60.00")
	color := "black"
	if err := svc.Update(context.Background(), car.ID, repository.CarUpdate{
		RatePerDay: &rate,
		Color:      &color,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	var saved model.Car
	if err := db.First(&saved, "id = ?", car.ID).Error; err != nil {
		t.Fatalf("load car: %v", err)
	}
	if !saved.RatePerDay.Equal(rate) {
		t.Fatalf("rate = %s, want 60.00", saved.RatePerDay)
	}
	if saved.Color != "black" {
		t.Fatalf("color = %s, want black", saved.Color)
	}
	// Остальные поля не тронуты.
	if saved.PlateNo != "BB-0001" || saved.Brand != "Toyota" {
		t.Fatalf("untouched fields changed: %+v", saved)
	}
}

func TestCarService_Update_Validation(t *testing.T) {
	db := openTestDB(t)
	svc := NewCarService(repository.NewGormCarRepository(db))
	car := seedCar(t, db, "BB-0001")

	if err := svc.Update(context.Background(), car.ID, repository.CarUpdate{}); !errors.Is(err, rental.ErrValidation) {
		t.Fatalf("empty patch: expected ErrValidation, got %v", err)
	}

	bad := model.CarStatus("scrapped")
	if err := svc.Update(context.Background(), car.ID, repository.CarUpdate{Status: &bad}); !errors.Is(err, rental.ErrValidation) {
		t.Fatalf("unknown status: expected ErrValidation, got %v", err)
	}

	color := "red"
	if err := svc.Update(context.Background(), car.ID+100, repository.CarUpdate{Color: &color}); !errors.Is(err, rental.ErrNotFound) {
		t.Fatalf("unknown car: expected ErrNotFound, got %v", err)
	}
}
