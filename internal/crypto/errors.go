package crypto

import (
	"fmt"

	"github.com/MKhiriev/tinyfs/models"
)

var (
	// ErrInvalidKeyLength is returned for raw keys that are not KeySize bytes.
	ErrInvalidKeyLength = fmt.Errorf("%w: encryption key must be 32 bytes", models.ErrInvalidState)

	// ErrEmptyPassword is returned when a password credential is empty.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", models.ErrCredentialsRequired)

	// ErrNoCredential is returned when Encrypt or Decrypt is called with the
	// zero Credential.
	ErrNoCredential = fmt.Errorf("%w: no key or password supplied", models.ErrCredentialsRequired)

	// ErrCiphertextTooShort is returned when a buffer cannot even hold the
	// salt, nonce and tag prefix.
	ErrCiphertextTooShort = fmt.Errorf("%w: ciphertext too short", models.ErrFormat)

	// ErrDecryptionFailed is returned when the AEAD tag does not verify.
	ErrDecryptionFailed = fmt.Errorf("%w: cannot decrypt data using the given key", models.ErrAuthentication)
)
