package textfmt

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter печатает целые суммы с разделителями разрядов локали и без дробной части
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewCurrencyFormatter(locale, isoCode string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", isoCode, err)
	}

	printer := message.NewPrinter(tag)
	// узкий знак из CLDR; если его нет, x/text отдает ISO-код, и он отделяется пробелом
	symbol := printer.Sprint(currency.NarrowSymbol(unit))
	if symbol == unit.String() {
		symbol += " "
	}

	return &CurrencyFormatter{
		printer: printer,
		symbol:  symbol,
	}, nil
}

// NewNairaFormatter - форматтер по умолчанию (en-NG, NGN)
func NewNairaFormatter() *CurrencyFormatter {
	f, err := NewCurrencyFormatter("en-NG", "NGN")
	if err != nil {
		panic(err)
	}
	return f
}

func (f *CurrencyFormatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", -amount)
	}
	return f.symbol + f.printer.Sprintf("%d", amount)
}
