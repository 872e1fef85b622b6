package store

import (
	"context"
	"io"

	"github.com/MKhiriev/tinyfs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContainerStorage reads and writes whole container files.
type ContainerStorage interface {
	// Exists reports whether a container file is present at path.
	Exists(ctx context.Context, path string) (bool, error)
	// Read opens the container file for reading. The caller closes it.
	Read(ctx context.Context, path string) (io.ReadCloser, error)
	// ReadInfo decodes only the header of the container file.
	ReadInfo(ctx context.Context, path string) (models.ContainerInfo, error)
	// Write atomically replaces the container file with data.
	Write(ctx context.Context, path string, data []byte) error
}
