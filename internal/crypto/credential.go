// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

type credentialKind uint8

const (
	credentialNone credentialKind = iota
	credentialKey
	credentialPassword
)

// Credential is the secret a container is encrypted or decrypted with: a raw
// 256-bit key, a password run through [DeriveKey], or nothing. The zero
// value means "no credential".
type Credential struct {
	kind     credentialKind
	key      []byte
	password string
}

// KeyCredential wraps a raw AES-256 key. The slice is copied.
func KeyCredential(key []byte) Credential {
	k := make([]byte, len(key))
	copy(k, key)
	return Credential{kind: credentialKey, key: k}
}

// PasswordCredential wraps a password.
func PasswordCredential(password string) Credential {
	return Credential{kind: credentialPassword, password: password}
}

// IsZero reports whether c carries no secret at all.
func (c Credential) IsZero() bool {
	return c.kind == credentialNone
}

// IsPassword reports whether c is a password credential.
func (c Credential) IsPassword() bool {
	return c.kind == credentialPassword
}

// Validate checks that the secret can actually be used.
func (c Credential) Validate() error {
	switch c.kind {
	case credentialKey:
		if len(c.key) != KeySize {
			return fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(c.key))
		}
	case credentialPassword:
		if c.password == "" {
			return ErrEmptyPassword
		}
	default:
		return ErrNoCredential
	}
	return nil
}

// String never prints the secret itself.
func (c Credential) String() string {
	switch c.kind {
	case credentialKey:
		return "key"
	case credentialPassword:
		return "password"
	default:
		return "none"
	}
}
