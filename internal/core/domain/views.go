package domain

import "time"

// Money - сумма вместе со строкой для показа (₦375,000)
type Money struct {
	Amount  int64
	Display string
}

type HomeView struct {
	Brand        string
	SEO          SEO
	HeroSlides   []HeroSlide
	Featured     []Property
	Cities       []City
	Contact      Contact
	SocialLinks  []SocialLink
	WhatsAppLink string
}

// ListingResult - результат фильтрации. Пустой Properties - это "ничего не найдено", а не ошибка.
type ListingResult struct {
	Criteria         FilterCriteria
	Properties       []Property
	HasActiveFilters bool
	// FallbackContactLink заполняется только для пустого результата
	FallbackContactLink string
}

func (r ListingResult) IsEmpty() bool {
	return len(r.Properties) == 0
}

type PropertyDetailsView struct {
	Property     Property
	NightlyPrice Money
	SEO          SEO
	GuestOptions []int
	Similar      []Property
	DefaultQuote BookingQuote
}

// BookingRequest - сырые значения формы бронирования
type BookingRequest struct {
	CheckIn  string
	CheckOut string
	Guests   int
}

type BookingQuote struct {
	PropertySlug string
	Draft        BookingDraft
	NightlyPrice Money
	Subtotal     Money
	ServiceFee   Money
	Total        Money
}

type BookingHandoff struct {
	Quote   BookingQuote
	Message string
	Link    string
}

type FilterOptions struct {
	Cities     []City
	Categories []string
	SortModes  []SortMode
	PriceMin   int64
	PriceMax   int64
	Defaults   FilterCriteria
}

// BookingInquiry - событие о лиде, уходит в брокер, если он включен
type BookingInquiry struct {
	ID           string
	PropertyID   string
	PropertySlug string
	PropertyName string
	CheckIn      *time.Time
	CheckOut     *time.Time
	Guests       int
	Nights       int
	Total        int64
	CreatedAt    time.Time
}
