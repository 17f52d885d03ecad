package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter собирает маршруты сервиса.
func NewRouter(h *Handlers, env string) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Пользователи
	r.POST("/users", h.registerUser)
	r.POST("/login", h.login)
	r.GET("/users", h.listUsers)
	r.GET("/users/:id/bookings", h.listCustomerBookings)

	// Автомобили
	r.GET("/cars", h.listCars)
	r.GET("/cars/available", h.listAvailableCars)
	r.POST("/cars", h.addCar)
	r.PATCH("/cars/:id", h.updateCar)
	r.GET("/cars/:id/availability", h.carAvailability)
	r.POST("/cars/:id/maintenance", h.createMaintenance)

	// Бронирования
	r.POST("/bookings", h.createBooking)
	r.GET("/bookings/:id", h.getBooking)
	r.GET("/bookings/:id/receipt", h.getBookingReceipt)
	r.PUT("/bookings/:id/status", h.setBookingStatus)
	r.POST("/bookings/:id/payments", h.recordPayment)

	// Платежи и обслуживание
	r.GET("/payments", h.listPayments)
	r.GET("/maintenance", h.listMaintenance)

	return r
}
