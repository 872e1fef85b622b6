package service

import (
	"context"

	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/internal/tinyfs"
	"github.com/MKhiriev/tinyfs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContainerService implements the container use cases shared by the command
// line and the terminal browser. Every method that changes a container loads
// it, applies the change in memory and writes it back atomically.
type ContainerService interface {
	// Open loads the container at path, or returns a new empty container with
	// the configured default flags when no file exists yet.
	Open(ctx context.Context, path string, cred crypto.Credential) (*tinyfs.Container, error)

	// Info reads only the container header.
	Info(ctx context.Context, path string) (models.ContainerInfo, error)

	// List describes every entry in on-disk order.
	List(ctx context.Context, path string, cred crypto.Credential) ([]models.EntryInfo, error)

	// Add stores one entry, creating the container file if needed.
	Add(ctx context.Context, path string, req models.AddRequest, cred crypto.Credential) (models.EntryInfo, error)

	// Extract returns the raw data of one entry.
	Extract(ctx context.Context, path, name string, cred crypto.Credential) ([]byte, error)

	// Remove deletes one entry. The last entry of a container cannot be
	// removed.
	Remove(ctx context.Context, path, name string, cred crypto.Credential) error

	// Encrypt re-saves an unencrypted container encrypted under cred.
	Encrypt(ctx context.Context, path string, cred crypto.Credential) error

	// Decrypt re-saves an encrypted container without encryption.
	Decrypt(ctx context.Context, path string, cred crypto.Credential) error

	// SetFlags applies case-sensitivity and name encoding changes.
	SetFlags(ctx context.Context, path string, cred crypto.Credential, update models.FlagUpdate) (models.ContainerInfo, error)

	// Save serializes c and writes it to path.
	Save(ctx context.Context, path string, c *tinyfs.Container, cred crypto.Credential) error

	// Describe builds the listing row for a single entry.
	Describe(e *tinyfs.Entry) models.EntryInfo
}
