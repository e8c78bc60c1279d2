package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

// Handler serves the maintenance endpoints on top of [service.Services].
type Handler struct {
	services *service.Services
	now      func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("maintenance http handler created")
	return &Handler{
		services: services,
		now:      time.Now,
		logger:   logger,
	}
}
