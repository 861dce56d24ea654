package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
	"shortlet-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

const propertyNotFoundMessage = "Property not found"

// PropertyHandler - листинг, карточка объекта и бронирование через WhatsApp
type PropertyHandler struct {
	findUC    usecases_port.FindPropertiesUseCase
	detailsUC usecases_port.GetPropertyDetailsUseCase
	quoteUC   usecases_port.QuoteBookingUseCase
	linkUC    usecases_port.BuildBookingLinkUseCase
	formatter port.PriceFormatterPort
}

func NewPropertyHandler(findUC usecases_port.FindPropertiesUseCase,
	detailsUC usecases_port.GetPropertyDetailsUseCase,
	quoteUC usecases_port.QuoteBookingUseCase,
	linkUC usecases_port.BuildBookingLinkUseCase,
	formatter port.PriceFormatterPort) *PropertyHandler {
	return &PropertyHandler{
		findUC:    findUC,
		detailsUC: detailsUC,
		quoteUC:   quoteUC,
		linkUC:    linkUC,
		formatter: formatter,
	}
}

// FindProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindProperties"})

	criteria, err := criteriaFromQuery(r)
	if err != nil {
		logger.Warn("Invalid listing query", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.findUC.Execute(r.Context(), criteria)
	if err != nil {
		logger.Error("Find properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, ListingResponse{
		Total:               len(result.Properties),
		Criteria:            toCriteriaResponse(result.Criteria),
		HasActiveFilters:    result.HasActiveFilters,
		Properties:          toPropertyCards(result.Properties, h.formatter),
		FallbackContactLink: result.FallbackContactLink,
	})
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{slug}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "GetPropertyDetails",
		"slug":    slug,
	})

	view, err := h.detailsUC.Execute(r.Context(), slug)
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	card := toPropertyCard(view.Property, h.formatter)
	card.Price = toMoneyResponse(view.NightlyPrice)

	RespondWithJSON(w, http.StatusOK, PropertyDetailsResponse{
		Property: PropertyResponse{
			PropertyCardResponse: card,
			Description:          view.Property.Description,
			Images:               view.Property.Images,
			Highlights:           view.Property.Highlights,
			Amenities:            view.Property.Amenities,
		},
		SEO:          SEOResponse(view.SEO),
		GuestOptions: view.GuestOptions,
		Similar:      toPropertyCards(view.Similar, h.formatter),
		Quote:        toQuoteResponse(view.DefaultQuote),
	})
}

// QuoteBooking обрабатывает GET /api/v1/properties/{slug}/quote
func (h *PropertyHandler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "QuoteBooking",
		"slug":    slug,
	})

	guests, err := queryInt(r, "guests", domain.DefaultGuests)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	req := domain.BookingRequest{
		CheckIn:  r.URL.Query().Get("checkIn"),
		CheckOut: r.URL.Query().Get("checkOut"),
		Guests:   guests,
	}

	quote, err := h.quoteUC.Execute(r.Context(), slug, req)
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toQuoteResponse(*quote))
}

// BuildBookingLink обрабатывает POST /api/v1/properties/{slug}/booking-link
func (h *PropertyHandler) BuildBookingLink(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "BuildBookingLink",
		"slug":    slug,
	})

	// пустое тело - даты не выбраны, гостей по умолчанию
	var body BookingLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Guests == 0 {
		body.Guests = domain.DefaultGuests
	}

	handoff, err := h.linkUC.Execute(r.Context(), slug, domain.BookingRequest{
		CheckIn:  body.CheckIn,
		CheckOut: body.CheckOut,
		Guests:   body.Guests,
	})
	if err != nil {
		h.writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Booking link built", port.Fields{"nights": handoff.Quote.Draft.Nights})
	RespondWithJSON(w, http.StatusOK, BookingLinkResponse{
		Quote:   toQuoteResponse(handoff.Quote),
		Message: handoff.Message,
		Link:    handoff.Link,
	})
}

func (h *PropertyHandler) writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, propertyNotFoundMessage)
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrPriceOverflow):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// criteriaFromQuery собирает критерии из query. Отсутствующие параметры берутся из DefaultCriteria.
func criteriaFromQuery(r *http.Request) (domain.FilterCriteria, error) {
	defaults := domain.DefaultCriteria()
	q := r.URL.Query()

	minPrice, err := queryInt64(r, "minPrice", defaults.PriceFloor)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	maxPrice, err := queryInt64(r, "maxPrice", defaults.PriceCeiling)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	bedrooms, err := queryInt(r, "bedrooms", defaults.MinBedrooms)
	if err != nil {
		return domain.FilterCriteria{}, err
	}

	return domain.FilterCriteria{
		City:         q.Get("city"),
		Category:     q.Get("category"),
		PriceFloor:   minPrice,
		PriceCeiling: maxPrice,
		MinBedrooms:  bedrooms,
		Search:       q.Get("q"),
		Sort:         domain.SortMode(q.Get("sort")),
	}, nil
}
