package store

import (
	"github.com/spf13/afero"

	"github.com/MKhiriev/tinyfs/internal/logger"
)

// Storages groups the storage implementations used by the service layer.
type Storages struct {
	Containers ContainerStorage
}

// NewStorages wires storages on top of fs. Production code passes
// afero.NewOsFs(); tests pass afero.NewMemMapFs().
func NewStorages(fs afero.Fs, logger *logger.Logger) *Storages {
	return &Storages{
		Containers: NewContainerFileStorage(fs, logger),
	}
}
