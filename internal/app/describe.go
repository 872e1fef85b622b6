package app

import (
	"errors"

	"github.com/MKhiriev/tinyfs/internal/store"
	"github.com/MKhiriev/tinyfs/models"
)

// Describe maps err to one of the Msg* constants. Derived kinds are checked
// before the kind they wrap.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrCredentialsRequired):
		return MsgCredentialsRequired
	case errors.Is(err, models.ErrLastEntry):
		return MsgLastEntry
	case errors.Is(err, store.ErrContainerNotExist):
		return MsgContainerNotFound
	case errors.Is(err, models.ErrAuthentication):
		return MsgAuthenticationFailed
	case errors.Is(err, models.ErrFormat):
		return MsgInvalidFormat
	case errors.Is(err, models.ErrDuplicateName):
		return MsgDuplicateName
	case errors.Is(err, models.ErrNotFound):
		return MsgEntryNotFound
	case errors.Is(err, models.ErrCapacity):
		return MsgCapacityExceeded
	case errors.Is(err, models.ErrUnsupportedPlatform):
		return MsgUnsupportedPlatform
	case errors.Is(err, models.ErrInvalidState):
		return MsgInvalidState
	default:
		return MsgOperationFailed
	}
}
