package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
	"github.com/rentacore/car-rental-platform/internal/receipt"
	"github.com/rentacore/car-rental-platform/internal/repository"
	"github.com/rentacore/car-rental-platform/internal/service"
)

const dateLayout = "2006-01-02"

// Handlers связывает HTTP-маршруты с сервисами ядра.
type Handlers struct {
	identity    *service.IdentityService
	cars        *service.CarService
	bookings    *service.BookingService
	payments    *service.PaymentService
	maintenance *service.MaintenanceService
}

func NewHandlers(
	identity *service.IdentityService,
	cars *service.CarService,
	bookings *service.BookingService,
	payments *service.PaymentService,
	maintenance *service.MaintenanceService,
) *Handlers {
	return &Handlers{
		identity:    identity,
		cars:        cars,
		bookings:    bookings,
		payments:    payments,
		maintenance: maintenance,
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		writeError(c, fmt.Errorf("%w: invalid %s", rental.ErrValidation, param))
		return 0, false
	}
	return uint(id), true
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", rental.ErrValidation, field)
	}
	return t, nil
}

//
// Пользователи
//

type registerRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LicenseNo string `json:"license_no"`
}

func (h *Handlers) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	user, err := h.identity.Register(c.Request.Context(), service.RegisterRequest{
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      model.UserRole(req.Role),
		Phone:     req.Phone,
		Address:   req.Address,
		LicenseNo: req.LicenseNo,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	user, err := h.identity.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handlers) listUsers(c *gin.Context) {
	users, err := h.identity.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

//
// Автомобили
//

type addCarRequest struct {
	PlateNo    string          `json:"plate_no"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Type       string          `json:"type"`
	Year       int             `json:"year"`
	Color      string          `json:"color"`
	RatePerDay decimal.Decimal `json:"rate_per_day"`
	Seats      int             `json:"seats"`
	Status     string          `json:"status"`
	ImagePath  string          `json:"image_path"`
}

func (h *Handlers) addCar(c *gin.Context) {
	var req addCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	car, err := h.cars.Add(c.Request.Context(), service.AddCarRequest{
		PlateNo:    req.PlateNo,
		Brand:      req.Brand,
		Model:      req.Model,
		Type:       req.Type,
		Year:       req.Year,
		Color:      req.Color,
		RatePerDay: req.RatePerDay,
		Seats:      req.Seats,
		Status:     model.CarStatus(req.Status),
		ImagePath:  req.ImagePath,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (h *Handlers) listCars(c *gin.Context) {
	cars, err := h.cars.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *Handlers) listAvailableCars(c *gin.Context) {
	cars, err := h.cars.ListAvailable(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

type updateCarRequest struct {
	PlateNo    *string          `json:"plate_no"`
	Brand      *string          `json:"brand"`
	Model      *string          `json:"model"`
	Type       *string          `json:"type"`
	Year       *int             `json:"year"`
	Color      *string          `json:"color"`
	RatePerDay *decimal.Decimal `json:"rate_per_day"`
	Seats      *int             `json:"seats"`
	Status     *string          `json:"status"`
	ImagePath  *string          `json:"image_path"`
}

func (h *Handlers) updateCar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	patch := repository.CarUpdate{
		PlateNo:    req.PlateNo,
		Brand:      req.Brand,
		Model:      req.Model,
		Type:       req.Type,
		Year:       req.Year,
		Color:      req.Color,
		RatePerDay: req.RatePerDay,
		Seats:      req.Seats,
		ImagePath:  req.ImagePath,
	}
	if req.Status != nil {
		st := model.CarStatus(*req.Status)
		patch.Status = &st
	}

	if err := h.cars.Update(c.Request.Context(), id, patch); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) carAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	start, err := parseDate(c.Query("start"), "start")
	if err != nil {
		writeError(c, err)
		return
	}
	end, err := parseDate(c.Query("end"), "end")
	if err != nil {
		writeError(c, err)
		return
	}
	r, err := rental.NewDateRange(start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	available, err := h.bookings.IsAvailable(c.Request.Context(), id, r)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"car_id": id, "available": available})
}

//
// Бронирования
//

type createBookingRequest struct {
	CustomerID      uint            `json:"customer_id"`
	CarID           uint            `json:"car_id"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	PickupLocation  string          `json:"pickup_location"`
	DropoffLocation string          `json:"dropoff_location"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMethod   string          `json:"payment_method"`
}

// createBooking повторяет поведение исходной формы: сначала проверка
// доступности, затем вставка. Между ними нет блокировки — конфликт двух
// одновременных заявок разрешается на этапе одобрения.
func (h *Handlers) createBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(c, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(c, err)
		return
	}
	r, err := rental.NewDateRange(start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	available, err := h.bookings.IsAvailable(c.Request.Context(), req.CarID, r)
	if err != nil {
		writeError(c, err)
		return
	}
	if !available {
		writeError(c, rental.ErrCarUnavailable)
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), service.CreateBookingRequest{
		CustomerID:      req.CustomerID,
		CarID:           req.CarID,
		StartDate:       start,
		EndDate:         end,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

type setBookingStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) setBookingStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req setBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	if err := h.bookings.SetStatus(c.Request.Context(), id, model.BookingStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) getBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookings.GetDetails(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handlers) getBookingReceipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookings.GetDetails(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	text, err := receipt.Render(booking)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

func (h *Handlers) listCustomerBookings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	bookings, err := h.bookings.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

//
// Платежи
//

type recordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handlers) recordPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	payment, err := h.payments.Record(c.Request.Context(), id, req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handlers) listPayments(c *gin.Context) {
	var bookingID *uint
	if v := c.Query("booking_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(c, fmt.Errorf("%w: invalid booking_id", rental.ErrValidation))
			return
		}
		u := uint(id)
		bookingID = &u
	}

	payments, err := h.payments.History(c.Request.Context(), bookingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

//
// Обслуживание
//

type maintenanceRequest struct {
	Description string `json:"description"`
	// LogOnly — только запись в журнал, статус машины не меняется.
	LogOnly bool `json:"log_only"`
}

func (h *Handlers) createMaintenance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", rental.ErrValidation, err))
		return
	}

	var (
		rec *model.Maintenance
		err error
	)
	if req.LogOnly {
		rec, err = h.maintenance.Log(c.Request.Context(), id, req.Description)
	} else {
		rec, err = h.maintenance.Create(c.Request.Context(), id, req.Description)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handlers) listMaintenance(c *gin.Context) {
	var carID *uint
	if v := c.Query("car_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(c, fmt.Errorf("%w: invalid car_id", rental.ErrValidation))
			return
		}
		u := uint(id)
		carID = &u
	}

	records, err := h.maintenance.List(c.Request.Context(), carID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
