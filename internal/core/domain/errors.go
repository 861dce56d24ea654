package domain

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidCatalog   = errors.New("invalid catalog")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrPriceOverflow    = errors.New("stay is too long to price")
)
