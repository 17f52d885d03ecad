// Package receipt рендерит человекочитаемый чек по бронированию.
// Только чтение: данные приходят из BookingService.GetDetails.
package receipt

import (
	"fmt"
	"strings"

	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/rental"
)

const line = "========================================"

// Render форматирует чек. Бронирование должно быть загружено вместе с
// клиентом и автомобилем, иначе вернётся ошибка.
func Render(b *model.Booking) (string, error) {
	if b == nil || b.Customer == nil || b.Car == nil {
		return "", fmt.Errorf("%w: booking details are incomplete", rental.ErrValidation)
	}

	r, err := rental.NewDateRange(b.Start(), b.End())
	if err != nil {
		return "", err
	}
	days := r.Days()

	var sb strings.Builder
	sb.WriteString(line + "\n")
	sb.WriteString("          CAR RENTAL RECEIPT\n")
	sb.WriteString(line + "\n")
	fmt.Fprintf(&sb, "Booking #%d (%s)\n", b.ID, b.CreatedAt.Format("2006-01-02"))
	sb.WriteString("\n")

	sb.WriteString("Customer\n")
	fmt.Fprintf(&sb, "  Name:       %s\n", b.Customer.FullName)
	fmt.Fprintf(&sb, "  Email:      %s\n", b.Customer.Email)
	fmt.Fprintf(&sb, "  Phone:      %s\n", b.Customer.Phone)
	fmt.Fprintf(&sb, "  License:    %s\n", b.Customer.LicenseNo)
	sb.WriteString("\n")

	sb.WriteString("Car\n")
	fmt.Fprintf(&sb, "  Vehicle:    %s %s\n", b.Car.Brand, b.Car.Model)
	fmt.Fprintf(&sb, "  Plate:      %s\n", b.Car.PlateNo)
	fmt.Fprintf(&sb, "  Color:      %s\n", b.Car.Color)
	fmt.Fprintf(&sb, "  Rate/day:   $%s\n", b.Car.RatePerDay.StringFixed(2))
	sb.WriteString("\n")

	sb.WriteString("Rental\n")
	fmt.Fprintf(&sb, "  From:       %s\n", r.Start.Format("2006-01-02"))
	fmt.Fprintf(&sb, "  To:         %s\n", r.End.Format("2006-01-02"))
	fmt.Fprintf(&sb, "  Duration:   %d day(s)\n", days)
	fmt.Fprintf(&sb, "  Pickup:     %s\n", b.PickupLocation)
	fmt.Fprintf(&sb, "  Dropoff:    %s\n", b.DropoffLocation)
	sb.WriteString("\n")

	sb.WriteString("Payment\n")
	fmt.Fprintf(&sb, "  Status:     %s / %s\n", b.Status, b.PaymentStatus)
	fmt.Fprintf(&sb, "  Method:     %s\n", b.PaymentMethod)
	fmt.Fprintf(&sb, "  TOTAL:      $%s\n", b.TotalAmount.StringFixed(2))
	sb.WriteString(line + "\n")
	sb.WriteString("      Thank you for your business!\n")
	sb.WriteString(line + "\n")

	return sb.String(), nil
}
