package service

import (
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/models"
)

type Services struct {
	IOService IOService
}

func NewServices(inputs models.InputRegistry, outputs models.OutputRegistry, logger *logger.Logger, observers ...OutputObserver) *Services {
	return &Services{
		IOService: NewIOService(inputs, outputs, logger, observers...),
	}
}
