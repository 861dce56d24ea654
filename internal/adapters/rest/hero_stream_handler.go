package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
	"shortlet-service/internal/core/port/usecases_port"
)

const DefaultHeroRotationInterval = 7 * time.Second

// HeroStreamHandler отдает смену слайдов героя через Server-Sent Events.
// У каждого подключения свой тикер, он останавливается при отключении клиента.
type HeroStreamHandler struct {
	homeUC   usecases_port.GetHomeUseCase
	interval time.Duration
}

func NewHeroStreamHandler(homeUC usecases_port.GetHomeUseCase, interval time.Duration) *HeroStreamHandler {
	if interval <= 0 {
		interval = DefaultHeroRotationInterval
	}
	return &HeroStreamHandler{homeUC: homeUC, interval: interval}
}

// StreamSlides обрабатывает GET /api/v1/hero/stream
func (h *HeroStreamHandler) StreamSlides(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "StreamSlides"})

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Streaming is not supported")
		return
	}

	home, err := h.homeUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get home use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load hero slides")
		return
	}
	slides := home.HeroSlides
	if len(slides) == 0 {
		WriteJSONError(w, http.StatusNotFound, "No hero slides configured")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	index := 0
	if err := writeSlideEvent(w, index, slides[index]); err != nil {
		return
	}
	flusher.Flush()
	logger.Debug("Hero stream opened", port.Fields{"slides": len(slides), "interval": h.interval.String()})

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			index = domain.NextSlide(index, len(slides))
			if err := writeSlideEvent(w, index, slides[index]); err != nil {
				logger.Warn("Error writing to client, closing hero stream", port.Fields{"error": err.Error()})
				return
			}
			flusher.Flush()
		case <-r.Context().Done():
			logger.Debug("Hero stream client disconnected", nil)
			return
		}
	}
}

func writeSlideEvent(w http.ResponseWriter, index int, slide domain.HeroSlide) error {
	data, err := json.Marshal(toHeroSlideResponse(index, slide))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: slide\ndata: %s\n\n", data)
	return err
}
