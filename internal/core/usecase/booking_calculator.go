package usecase

import (
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
)

// DefaultServiceFee - фиксированный сбор, добавляемый к каждому бронированию
const DefaultServiceFee int64 = 75000

// BookingCalculator собирает BookingQuote: ночи, подытог, сбор и итог с форматированием
type BookingCalculator struct {
	serviceFee int64
	formatter  port.PriceFormatterPort
}

func NewBookingCalculator(serviceFee int64, formatter port.PriceFormatterPort) *BookingCalculator {
	if serviceFee < 0 {
		serviceFee = 0
	}
	return &BookingCalculator{serviceFee: serviceFee, formatter: formatter}
}

func (c *BookingCalculator) money(amount int64) domain.Money {
	return domain.Money{Amount: amount, Display: c.formatter.Format(amount)}
}

// Quote разбирает сырые значения формы. Перевернутые даты не ошибка - будет 1 ночь.
func (c *BookingCalculator) Quote(p domain.Property, req domain.BookingRequest) (domain.BookingQuote, error) {
	checkIn, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		return domain.BookingQuote{}, err
	}
	checkOut, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		return domain.BookingQuote{}, err
	}

	draft := domain.NewBookingDraft(p, checkIn, checkOut, req.Guests)
	breakdown, err := domain.CalculatePrice(p.Price, draft.Nights, c.serviceFee)
	if err != nil {
		return domain.BookingQuote{}, err
	}

	return domain.BookingQuote{
		PropertySlug: p.Slug,
		Draft:        draft,
		NightlyPrice: c.money(breakdown.NightlyPrice),
		Subtotal:     c.money(breakdown.Subtotal),
		ServiceFee:   c.money(breakdown.ServiceFee),
		Total:        c.money(breakdown.Total),
	}, nil
}

func (c *BookingCalculator) FormatPrice(amount int64) domain.Money {
	return c.money(amount)
}
