package service

import (
	"fmt"

	"github.com/MKhiriev/tinyfs/internal/config"
	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/store"
)

type Services struct {
	Containers ContainerService
}

func NewServices(storages *store.Storages, cfg config.Codec, logger *logger.Logger) (*Services, error) {
	containers, err := NewContainerService(storages.Containers, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create container service: %w", err)
	}

	return &Services{
		Containers: containers,
	}, nil
}
