package domain

import "fmt"

// City - элемент справочника городов. Count считается по каталогу, а не берется из данных.
type City struct {
	ID    string
	Name  string
	Count int
}

type Contact struct {
	Address  string
	Phone    string
	Email    string
	WhatsApp string // только цифры, формат wa.me
}

type SocialLink struct {
	Network string
	URL     string
}

type SEO struct {
	Title       string
	Description string
	Image       string
}

type HeroSlide struct {
	Image    string
	Title    string
	Subtitle string
}

// Catalog - весь статический набор данных сайта
type Catalog struct {
	Brand       string
	Properties  []Property
	Cities      []City
	Contact     Contact
	SocialLinks []SocialLink
	SEO         SEO
	HeroSlides  []HeroSlide
}

// NewCatalog проверяет данные и пересчитывает количество объектов по городам
func NewCatalog(c Catalog) (*Catalog, error) {
	slugs := make(map[string]struct{}, len(c.Properties))
	ids := make(map[string]struct{}, len(c.Properties))
	for _, p := range c.Properties {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if _, dup := slugs[p.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalidCatalog, p.Slug)
		}
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, p.ID)
		}
		slugs[p.Slug] = struct{}{}
		ids[p.ID] = struct{}{}
	}

	counts := make(map[string]int)
	for _, p := range c.Properties {
		counts[p.City]++
	}
	cities := make([]City, len(c.Cities))
	for i, city := range c.Cities {
		city.Count = counts[city.ID]
		cities[i] = city
	}
	c.Cities = cities

	return &c, nil
}

// FindBySlug возвращает ErrPropertyNotFound, если slug не найден
func (c *Catalog) FindBySlug(slug string) (Property, error) {
	for _, p := range c.Properties {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Property{}, ErrPropertyNotFound
}

// Featured - избранные объекты в порядке каталога
func (c *Catalog) Featured() []Property {
	out := make([]Property, 0)
	for _, p := range c.Properties {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Similar - до limit объектов в том же городе, кроме самого объекта
func (c *Catalog) Similar(p Property, limit int) []Property {
	out := make([]Property, 0, limit)
	for _, other := range c.Properties {
		if len(out) >= limit {
			break
		}
		if other.City == p.City && other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}

// Categories - уникальные категории в порядке первого появления
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range c.Properties {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// PriceRange - минимальная и максимальная цена за ночь, (0, 0) для пустого каталога
func (c *Catalog) PriceRange() (lo, hi int64) {
	for i, p := range c.Properties {
		if i == 0 || p.Price < lo {
			lo = p.Price
		}
		if p.Price > hi {
			hi = p.Price
		}
	}
	return lo, hi
}
