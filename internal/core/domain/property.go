package domain

import "fmt"

// Property - одна карточка объявления. После загрузки каталога не изменяется.
type Property struct {
	ID          string
	Slug        string
	Name        string
	Description string
	Images      []string

	City     string
	Category string
	Location string

	Bedrooms  int
	MaxGuests int
	Price     int64 // за ночь, в найрах без копеек

	Featured   bool
	Highlights []string
	Amenities  []string
}

// Validate проверяет инварианты карточки
func (p Property) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("property %q: empty id", p.Slug)
	case p.Slug == "":
		return fmt.Errorf("property %q: empty slug", p.ID)
	case len(p.Images) == 0:
		return fmt.Errorf("property %q: at least one image is required", p.Slug)
	case p.MaxGuests < 1:
		return fmt.Errorf("property %q: max guests must be >= 1, got %d", p.Slug, p.MaxGuests)
	case p.Bedrooms < 0:
		return fmt.Errorf("property %q: negative bedrooms", p.Slug)
	case p.Price < 0:
		return fmt.Errorf("property %q: negative price", p.Slug)
	}
	return nil
}

// CoverImage - первое фото, используется в карточках и SEO
func (p Property) CoverImage() string {
	return p.Images[0]
}

// searchText - то, по чему ищет строка поиска: имя, локация и город
func (p Property) searchText() string {
	return p.Name + " " + p.Location + " " + p.City
}
