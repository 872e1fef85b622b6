package compression

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/tinyfs/models"
)

var (
	// ErrLimitExceeded is returned by the bounded stream functions when the
	// output would grow past the caller's limit.
	ErrLimitExceeded = fmt.Errorf("%w: compression output limit exceeded", models.ErrCapacity)

	// ErrCorruptStream is returned when compressed input cannot be decoded.
	ErrCorruptStream = fmt.Errorf("%w: corrupt gzip stream", models.ErrFormat)

	// ErrInvalidLevel is returned for a compression level the gzip encoder
	// does not accept.
	ErrInvalidLevel = errors.New("invalid compression level")
)
