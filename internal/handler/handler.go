package handler

import (
	"net/http"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler

	logger *logger.Logger
}

// NewHandler builds a Handler. A nil metrics handler leaves /metrics
// unrouted.
func NewHandler(services *service.Services, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
