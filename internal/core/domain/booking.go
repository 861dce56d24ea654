package domain

import (
	"math"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

const (
	DateLayout = "2006-01-02"

	// DefaultGuests - значение селектора гостей при открытии карточки
	DefaultGuests = 2
)

// BookingDraft - черновик бронирования для одной карточки. Пересобирается при каждом изменении.
type BookingDraft struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   int
	Nights   int
}

// NewBookingDraft ограничивает число гостей диапазоном [1, MaxGuests] и считает ночи
func NewBookingDraft(p Property, checkIn, checkOut *time.Time, guests int) BookingDraft {
	return BookingDraft{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   ClampGuests(guests, p.MaxGuests),
		Nights:   NightCount(checkIn, checkOut),
	}
}

func ClampGuests(guests, maxGuests int) int {
	if maxGuests < 1 {
		maxGuests = 1
	}
	switch {
	case guests < 1:
		return 1
	case guests > maxGuests:
		return maxGuests
	}
	return guests
}

// NightCount = ceil(дни между датами). Если дата не задана или выезд не позже заезда - 1 ночь.
func NightCount(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 1
	}
	// через Unix-секунды: time.Duration ограничен ~292 годами
	diff := checkOut.Unix() - checkIn.Unix()
	if diff <= 0 {
		return 1
	}
	days := diff / secondsPerDay
	if diff%secondsPerDay != 0 {
		days++
	}
	return int(days)
}

// PriceBreakdown - расчет стоимости проживания
type PriceBreakdown struct {
	NightlyPrice int64
	Nights       int
	Subtotal     int64
	ServiceFee   int64
	Total        int64
}

// CalculatePrice возвращает ErrPriceOverflow, если итог не помещается в int64
func CalculatePrice(nightlyPrice int64, nights int, serviceFee int64) (PriceBreakdown, error) {
	n := int64(nights)
	if nightlyPrice > 0 && n > 0 && nightlyPrice > math.MaxInt64/n {
		return PriceBreakdown{}, ErrPriceOverflow
	}
	subtotal := nightlyPrice * n
	if serviceFee > 0 && subtotal > math.MaxInt64-serviceFee {
		return PriceBreakdown{}, ErrPriceOverflow
	}
	return PriceBreakdown{
		NightlyPrice: nightlyPrice,
		Nights:       nights,
		Subtotal:     subtotal,
		ServiceFee:   serviceFee,
		Total:        subtotal + serviceFee,
	}, nil
}

// ParseDate разбирает YYYY-MM-DD. Пустая строка - дата не выбрана (nil, nil).
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

// FormatDateOr возвращает дату в формате YYYY-MM-DD или fallback, если даты нет
func FormatDateOr(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format(DateLayout)
}
