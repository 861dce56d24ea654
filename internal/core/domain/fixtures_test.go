package domain

func testProperty(id, slug, city, category string, price int64, bedrooms int, featured bool) Property {
	return Property{
		ID:        id,
		Slug:      slug,
		Name:      slug,
		Images:    []string{"/images/" + slug + ".jpg"},
		City:      city,
		Category:  category,
		Location:  city,
		Bedrooms:  bedrooms,
		MaxGuests: 4,
		Price:     price,
		Featured:  featured,
	}
}

// lagosProperties - пять объектов в Лагосе в порядке каталога: цены 50000, 80000, 120000, 90000, 60000
func lagosProperties() []Property {
	return []Property{
		testProperty("1", "ikoyi-studio", "lagos", "apartment", 50000, 1, false),
		testProperty("2", "vi-loft", "lagos", "apartment", 80000, 2, true),
		testProperty("3", "lekki-penthouse", "lagos", "penthouse", 120000, 3, true),
		testProperty("4", "banana-island-villa", "lagos", "villa", 90000, 4, false),
		testProperty("5", "lekki-garden", "lagos", "apartment", 60000, 2, false),
	}
}

func testCatalogProperties() []Property {
	props := lagosProperties()
	props[2].Location = "Lekki Phase 1, Lagos"
	props[4].Location = "Chevron Drive, Lekki"
	return append(props,
		testProperty("6", "maitama-suite", "abuja", "apartment", 85000, 2, true),
		testProperty("7", "asokoro-duplex", "abuja", "duplex", 150000, 5, false),
	)
}

func prices(props []Property) []int64 {
	out := make([]int64, len(props))
	for i, p := range props {
		out[i] = p.Price
	}
	return out
}

func slugs(props []Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Slug
	}
	return out
}
