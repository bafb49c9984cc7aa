package http

import (
	"github.com/MKhiriev/grid-daemon/internal/logger"
	"github.com/MKhiriev/grid-daemon/internal/validator"
)

type Handler struct {
	prober  validator.Prober
	version string

	logger *logger.Logger
}

func NewHandler(prober validator.Prober, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		prober:  prober,
		version: version,
		logger:  logger,
	}
}
