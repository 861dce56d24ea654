package embedded

import "shortlet-service/internal/core/domain"

// catalogDocument - формат JSON-файла каталога (см. contracts/schemas/catalog/v1.json)
type catalogDocument struct {
	Brand       string             `json:"brand"`
	SEO         seoDocument        `json:"seo"`
	Contact     contactDocument    `json:"contact"`
	SocialLinks []socialDocument   `json:"social_links"`
	HeroSlides  []slideDocument    `json:"hero_slides"`
	Cities      []cityDocument     `json:"cities"`
	Properties  []propertyDocument `json:"properties"`
}

type seoDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type contactDocument struct {
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}

type socialDocument struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type slideDocument struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Count из файла не используется: количество пересчитывается по каталогу
type cityDocument struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type propertyDocument struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	City        string   `json:"city"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Bedrooms    int      `json:"bedrooms"`
	MaxGuests   int      `json:"max_guests"`
	Price       int64    `json:"price"`
	Featured    bool     `json:"featured"`
	Highlights  []string `json:"highlights"`
	Amenities   []string `json:"amenities"`
}

func (d catalogDocument) toDomain() domain.Catalog {
	c := domain.Catalog{
		Brand: d.Brand,
		SEO:   domain.SEO(d.SEO),
		Contact: domain.Contact{
			Address:  d.Contact.Address,
			Phone:    d.Contact.Phone,
			Email:    d.Contact.Email,
			WhatsApp: d.Contact.WhatsApp,
		},
		SocialLinks: make([]domain.SocialLink, len(d.SocialLinks)),
		HeroSlides:  make([]domain.HeroSlide, len(d.HeroSlides)),
		Cities:      make([]domain.City, len(d.Cities)),
		Properties:  make([]domain.Property, len(d.Properties)),
	}
	for i, s := range d.SocialLinks {
		c.SocialLinks[i] = domain.SocialLink(s)
	}
	for i, s := range d.HeroSlides {
		c.HeroSlides[i] = domain.HeroSlide(s)
	}
	for i, city := range d.Cities {
		c.Cities[i] = domain.City{ID: city.ID, Name: city.Name}
	}
	for i, p := range d.Properties {
		c.Properties[i] = domain.Property{
			ID:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name,
			Description: p.Description,
			Images:      p.Images,
			City:        p.City,
			Category:    p.Category,
			Location:    p.Location,
			Bedrooms:    p.Bedrooms,
			MaxGuests:   p.MaxGuests,
			Price:       p.Price,
			Featured:    p.Featured,
			Highlights:  p.Highlights,
			Amenities:   p.Amenities,
		}
	}
	return c
}
