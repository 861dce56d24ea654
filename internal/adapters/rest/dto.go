package rest

import (
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
)

// BookingLinkRequest - тело POST /properties/{slug}/booking-link
type BookingLinkRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

type MoneyResponse struct {
	Amount  int64  `json:"amount"`
	Display string `json:"display"`
}

// PropertyCardResponse - карточка объекта в листинге и в блоках "featured"/"similar"
type PropertyCardResponse struct {
	ID        string        `json:"id"`
	Slug      string        `json:"slug"`
	Name      string        `json:"name"`
	Image     string        `json:"image"`
	City      string        `json:"city"`
	Category  string        `json:"category"`
	Location  string        `json:"location"`
	Bedrooms  int           `json:"bedrooms"`
	MaxGuests int           `json:"max_guests"`
	Price     MoneyResponse `json:"price"`
	Featured  bool          `json:"featured"`
}

type PropertyResponse struct {
	PropertyCardResponse
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Highlights  []string `json:"highlights"`
	Amenities   []string `json:"amenities"`
}

type CityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SEOResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type HeroSlideResponse struct {
	Index    int    `json:"index"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type SocialLinkResponse struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type ContactResponse struct {
	Address      string               `json:"address"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	WhatsApp     string               `json:"whatsapp"`
	WhatsAppLink string               `json:"whatsapp_link"`
	SocialLinks  []SocialLinkResponse `json:"social_links"`
}

type HomeResponse struct {
	Brand        string                 `json:"brand"`
	SEO          SEOResponse            `json:"seo"`
	HeroSlides   []HeroSlideResponse    `json:"hero_slides"`
	Featured     []PropertyCardResponse `json:"featured"`
	Cities       []CityResponse         `json:"cities"`
	Contact      ContactResponse        `json:"contact"`
	WhatsAppLink string                 `json:"whatsapp_link"`
}

type CriteriaResponse struct {
	City        string `json:"city"`
	Category    string `json:"category"`
	MinPrice    int64  `json:"min_price"`
	MaxPrice    int64  `json:"max_price"`
	MinBedrooms int    `json:"bedrooms"`
	Search      string `json:"q"`
	Sort        string `json:"sort"`
}

type ListingResponse struct {
	Total               int                    `json:"total"`
	Criteria            CriteriaResponse       `json:"criteria"`
	HasActiveFilters    bool                   `json:"has_active_filters"`
	Properties          []PropertyCardResponse `json:"properties"`
	FallbackContactLink string                 `json:"fallback_contact_link,omitempty"`
}

type BookingDraftResponse struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Guests   int     `json:"guests"`
	Nights   int     `json:"nights"`
}

type BookingQuoteResponse struct {
	PropertySlug string               `json:"property_slug"`
	Draft        BookingDraftResponse `json:"draft"`
	NightlyPrice MoneyResponse        `json:"nightly_price"`
	Subtotal     MoneyResponse        `json:"subtotal"`
	ServiceFee   MoneyResponse        `json:"service_fee"`
	Total        MoneyResponse        `json:"total"`
}

type PropertyDetailsResponse struct {
	Property     PropertyResponse       `json:"property"`
	SEO          SEOResponse            `json:"seo"`
	GuestOptions []int                  `json:"guest_options"`
	Similar      []PropertyCardResponse `json:"similar"`
	Quote        BookingQuoteResponse   `json:"quote"`
}

type BookingLinkResponse struct {
	Quote   BookingQuoteResponse `json:"quote"`
	Message string               `json:"message"`
	Link    string               `json:"link"`
}

// OptionResponse - пара значение/подпись для селектора на фронтенде
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptionsResponse struct {
	Cities     []CityResponse   `json:"cities"`
	Categories []OptionResponse `json:"categories"`
	SortModes  []OptionResponse `json:"sort_modes"`
	PriceMin   int64            `json:"price_min"`
	PriceMax   int64            `json:"price_max"`
	Defaults   CriteriaResponse `json:"defaults"`
}

func toMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount, Display: m.Display}
}

func toPropertyCard(p domain.Property, formatter port.PriceFormatterPort) PropertyCardResponse {
	return PropertyCardResponse{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Image:     p.CoverImage(),
		City:      p.City,
		Category:  p.Category,
		Location:  p.Location,
		Bedrooms:  p.Bedrooms,
		MaxGuests: p.MaxGuests,
		Price:     MoneyResponse{Amount: p.Price, Display: formatter.Format(p.Price)},
		Featured:  p.Featured,
	}
}

func toPropertyCards(properties []domain.Property, formatter port.PriceFormatterPort) []PropertyCardResponse {
	cards := make([]PropertyCardResponse, len(properties))
	for i, p := range properties {
		cards[i] = toPropertyCard(p, formatter)
	}
	return cards
}

func toCityResponses(cities []domain.City) []CityResponse {
	out := make([]CityResponse, len(cities))
	for i, c := range cities {
		out[i] = CityResponse(c)
	}
	return out
}

func toCriteriaResponse(c domain.FilterCriteria) CriteriaResponse {
	return CriteriaResponse{
		City:        c.City,
		Category:    c.Category,
		MinPrice:    c.PriceFloor,
		MaxPrice:    c.PriceCeiling,
		MinBedrooms: c.MinBedrooms,
		Search:      c.Search,
		Sort:        string(c.Sort),
	}
}

func toHeroSlideResponse(index int, s domain.HeroSlide) HeroSlideResponse {
	return HeroSlideResponse{Index: index, Image: s.Image, Title: s.Title, Subtitle: s.Subtitle}
}

func toContactResponse(c domain.Contact, links []domain.SocialLink, whatsAppLink string) ContactResponse {
	resp := ContactResponse{
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		WhatsApp:     c.WhatsApp,
		WhatsAppLink: whatsAppLink,
		SocialLinks:  make([]SocialLinkResponse, len(links)),
	}
	for i, l := range links {
		resp.SocialLinks[i] = SocialLinkResponse(l)
	}
	return resp
}

func toQuoteResponse(q domain.BookingQuote) BookingQuoteResponse {
	return BookingQuoteResponse{
		PropertySlug: q.PropertySlug,
		Draft: BookingDraftResponse{
			CheckIn:  optionalDate(q.Draft.CheckIn),
			CheckOut: optionalDate(q.Draft.CheckOut),
			Guests:   q.Draft.Guests,
			Nights:   q.Draft.Nights,
		},
		NightlyPrice: toMoneyResponse(q.NightlyPrice),
		Subtotal:     toMoneyResponse(q.Subtotal),
		ServiceFee:   toMoneyResponse(q.ServiceFee),
		Total:        toMoneyResponse(q.Total),
	}
}
