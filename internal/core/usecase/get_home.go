package usecase

import (
	"context"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
)

type GetHomeUseCase struct {
	catalog *domain.Catalog
}

func NewGetHomeUseCase(catalog *domain.Catalog) *GetHomeUseCase {
	return &GetHomeUseCase{catalog: catalog}
}

func (uc *GetHomeUseCase) Execute(ctx context.Context) (*domain.HomeView, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetHome"})

	featured := uc.catalog.Featured()
	logger.Debug("Home view assembled", port.Fields{
		"featured_count": len(featured),
		"cities_count":   len(uc.catalog.Cities),
	})

	return &domain.HomeView{
		Brand:        uc.catalog.Brand,
		SEO:          uc.catalog.SEO,
		HeroSlides:   uc.catalog.HeroSlides,
		Featured:     featured,
		Cities:       uc.catalog.Cities,
		Contact:      uc.catalog.Contact,
		SocialLinks:  uc.catalog.SocialLinks,
		WhatsAppLink: domain.WhatsAppLink(uc.catalog.Contact.WhatsApp, domain.GreetingMessage(uc.catalog.Brand)),
	}, nil
}
