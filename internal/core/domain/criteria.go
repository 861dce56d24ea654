package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

const (
	// AllOption - значение селектора "все города" / "все категории"
	AllOption = "all"

	DefaultPriceCeiling int64 = 500000
)

type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortBedrooms  SortMode = "bedrooms"
)

// SortModes - варианты сортировки в порядке показа в селекторе
var SortModes = []SortMode{SortFeatured, SortPriceLow, SortPriceHigh, SortBedrooms}

// ParseSortMode возвращает SortFeatured для пустого и неизвестного значения
func ParseSortMode(s string) SortMode {
	mode := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortModes, mode) {
		return mode
	}
	return SortFeatured
}

func (m SortMode) Label() string {
	switch m {
	case SortPriceLow:
		return "Price: Low → High"
	case SortPriceHigh:
		return "Price: High → Low"
	case SortBedrooms:
		return "Most Bedrooms"
	default:
		return "Featured"
	}
}

// FilterCriteria - неизменяемый набор фильтров листинга. Пересобирается на каждый запрос.
type FilterCriteria struct {
	City         string
	Category     string
	PriceFloor   int64
	PriceCeiling int64
	MinBedrooms  int
	Search       string
	Sort         SortMode
}

// DefaultCriteria - состояние после "Clear filters"
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		City:         AllOption,
		Category:     AllOption,
		PriceFloor:   0,
		PriceCeiling: DefaultPriceCeiling,
		Sort:         SortFeatured,
	}
}

// Normalized подставляет "all" вместо пустых селекторов и убирает пробелы вокруг строки поиска
func (c FilterCriteria) Normalized() FilterCriteria {
	if c.City == "" {
		c.City = AllOption
	}
	if c.Category == "" {
		c.Category = AllOption
	}
	if c.PriceFloor < 0 {
		c.PriceFloor = 0
	}
	if c.MinBedrooms < 0 {
		c.MinBedrooms = 0
	}
	c.Search = strings.TrimSpace(c.Search)
	c.Sort = ParseSortMode(string(c.Sort))
	return c
}

// HasActiveFilters повторяет условие показа кнопки "Clear filters"
func (c FilterCriteria) HasActiveFilters() bool {
	return c.City != AllOption || c.Search != "" || c.MinBedrooms > 0
}

// Key - ключ мемоизации: одинаковые критерии дают одинаковый ключ.
// Текстовые поля экранируются, чтобы разделитель из пользовательского ввода не склеивал ключи.
func (c FilterCriteria) Key() string {
	return fmt.Sprintf("city=%q|cat=%q|price=%d-%d|beds=%d|q=%q|sort=%q",
		c.City, c.Category, c.PriceFloor, c.PriceCeiling, c.MinBedrooms, strings.ToLower(c.Search), string(c.Sort))
}

// Matches - все условия объединены через AND
func (c FilterCriteria) Matches(p Property) bool {
	if c.City != AllOption && p.City != c.City {
		return false
	}
	if c.Category != AllOption && p.Category != c.Category {
		return false
	}
	if p.Price < c.PriceFloor || p.Price > c.PriceCeiling {
		return false
	}
	if c.MinBedrooms > 0 && p.Bedrooms < c.MinBedrooms {
		return false
	}
	if c.Search != "" && !strings.Contains(strings.ToLower(p.searchText()), strings.ToLower(c.Search)) {
		return false
	}
	return true
}

// FilterProperties возвращает новый срез подходящих объектов в запрошенном порядке.
// Входной срез не изменяется, сортировка стабильная.
func FilterProperties(properties []Property, criteria FilterCriteria) []Property {
	out := make([]Property, 0, len(properties))
	for _, p := range properties {
		if criteria.Matches(p) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, comparatorFor(criteria.Sort))
	return out
}

func comparatorFor(mode SortMode) func(a, b Property) int {
	switch mode {
	case SortPriceLow:
		return func(a, b Property) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		return func(a, b Property) int { return cmp.Compare(b.Price, a.Price) }
	case SortBedrooms:
		return func(a, b Property) int { return cmp.Compare(b.Bedrooms, a.Bedrooms) }
	default:
		return func(a, b Property) int { return cmp.Compare(featuredRank(a), featuredRank(b)) }
	}
}

func featuredRank(p Property) int {
	if p.Featured {
		return 0
	}
	return 1
}
