package rental

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateRange — включительный диапазон календарных дат [Start, End].
// Обе границы нормализованы к полуночи UTC; время суток роли не играет,
// аренда считается целыми днями.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateOnly отбрасывает время суток и часовой пояс, оставляя календарную дату.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewDateRange строит диапазон и валидирует его: end строго позже start
// (минимум один день аренды). Никаких перестановок границ — перепутанный
// ввод это ошибка вызывающей стороны, а не норма.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	start = DateOnly(start)
	end = DateOnly(end)
	if !end.After(start) {
		return DateRange{}, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps проверяет пересечение двух включительных диапазонов:
// касание концами считается пересечением, потому что день аренды — целая
// единица (s1 <= e2 && s2 <= e1).
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Days возвращает число дней аренды включительно: 01..03 июня — три дня.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start)/(24*time.Hour)) + 1
}

// Quote считает стоимость аренды: тариф за день, умноженный на включительное
// число дней.
func Quote(ratePerDay decimal.Decimal, r DateRange) decimal.Decimal {
	return ratePerDay.Mul(decimal.NewFromInt(int64(r.Days())))
}
