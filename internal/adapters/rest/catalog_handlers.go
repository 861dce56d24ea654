package rest

import (
	"net/http"

	"shortlet-service/internal/adapters/textfmt"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
	"shortlet-service/internal/core/port/usecases_port"
)

// CatalogHandler - общие данные сайта: главная, контакты, опции фильтров
type CatalogHandler struct {
	homeUC    usecases_port.GetHomeUseCase
	optionsUC usecases_port.GetFilterOptionsUseCase
	formatter port.PriceFormatterPort
}

func NewCatalogHandler(homeUC usecases_port.GetHomeUseCase,
	optionsUC usecases_port.GetFilterOptionsUseCase,
	formatter port.PriceFormatterPort) *CatalogHandler {
	return &CatalogHandler{
		homeUC:    homeUC,
		optionsUC: optionsUC,
		formatter: formatter,
	}
}

// GetHome обрабатывает GET /api/v1/home
func (h *CatalogHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetHome"})

	home, err := h.homeUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get home use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load home page")
		return
	}

	slides := make([]HeroSlideResponse, len(home.HeroSlides))
	for i, s := range home.HeroSlides {
		slides[i] = toHeroSlideResponse(i, s)
	}

	RespondWithJSON(w, http.StatusOK, HomeResponse{
		Brand:        home.Brand,
		SEO:          SEOResponse(home.SEO),
		HeroSlides:   slides,
		Featured:     toPropertyCards(home.Featured, h.formatter),
		Cities:       toCityResponses(home.Cities),
		Contact:      toContactResponse(home.Contact, home.SocialLinks, home.WhatsAppLink),
		WhatsAppLink: home.WhatsAppLink,
	})
}

// GetContact обрабатывает GET /api/v1/contact
func (h *CatalogHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetContact"})

	home, err := h.homeUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get home use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load contact details")
		return
	}

	RespondWithJSON(w, http.StatusOK, toContactResponse(home.Contact, home.SocialLinks, home.WhatsAppLink))
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *CatalogHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFilterOptions"})

	options, err := h.optionsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get filter options use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load filter options")
		return
	}

	response := FilterOptionsResponse{
		Cities:     toCityResponses(options.Cities),
		Categories: make([]OptionResponse, 0, len(options.Categories)+1),
		SortModes:  make([]OptionResponse, len(options.SortModes)),
		PriceMin:   options.PriceMin,
		PriceMax:   options.PriceMax,
		Defaults:   toCriteriaResponse(options.Defaults),
	}
	response.Categories = append(response.Categories, OptionResponse{Value: domain.AllOption, Label: "All Types"})
	for _, category := range options.Categories {
		response.Categories = append(response.Categories, OptionResponse{Value: category, Label: textfmt.Label(category)})
	}
	for i, mode := range options.SortModes {
		response.SortModes[i] = OptionResponse{Value: string(mode), Label: mode.Label()}
	}

	RespondWithJSON(w, http.StatusOK, response)
}
