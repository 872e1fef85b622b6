package service

import (
	"fmt"

	"github.com/MKhiriev/tinyfs/models"
)

var (
	ErrAlreadyEncrypted = fmt.Errorf("%w: container is already encrypted", models.ErrInvalidState)
	ErrNotEncrypted     = fmt.Errorf("%w: container is not encrypted", models.ErrInvalidState)
	ErrNoFlagChanges    = fmt.Errorf("%w: no flag changes requested", models.ErrInvalidState)
)
