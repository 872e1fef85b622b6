// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the authenticated encryption applied to the
// serialized table of an encrypted TinyFS container.
//
// Encryption is AES-256-GCM with a 12-byte random nonce and a 16-byte tag and
// no associated data. Password credentials are stretched with PBKDF2-SHA256
// (100 000 iterations) over a 16-byte random salt that is stored in front of
// the sealed buffer.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/tinyfs/models"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32
	// SaltSize is the length of the PBKDF2 salt stored with password-sealed data.
	SaltSize = 16
	// NonceSize is the GCM nonce length.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
	// Iterations is the PBKDF2 iteration count.
	Iterations = 100000

	// Overhead is how much a key-sealed buffer grows.
	Overhead = NonceSize + TagSize
	// MaxOverhead is how much a password-sealed buffer grows.
	MaxOverhead = SaltSize + Overhead
)

var (
	probeOnce sync.Once
	probeErr  error

	// newAEAD builds the GCM instance; replaced in tests to simulate a
	// platform without AES-GCM.
	newAEAD = func(key []byte) (cipher.AEAD, error) {
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	}
)

// Probe checks once per process that AES-256-GCM with the expected nonce and
// tag sizes is usable, and returns the memoized result. A failure is reported
// as models.ErrUnsupportedPlatform.
func Probe() error {
	probeOnce.Do(func() {
		probeErr = probe()
	})
	return probeErr
}

func probe() error {
	aead, err := newAEAD(make([]byte, KeySize))
	if err != nil {
		return fmt.Errorf("%w: AES-GCM is unavailable: %v", models.ErrUnsupportedPlatform, err)
	}
	if aead.NonceSize() != NonceSize || aead.Overhead() != TagSize {
		return fmt.Errorf("%w: AES-GCM nonce/tag sizes are %d/%d, want %d/%d",
			models.ErrUnsupportedPlatform, aead.NonceSize(), aead.Overhead(), NonceSize, TagSize)
	}

	nonce := make([]byte, NonceSize)
	sealed := aead.Seal(nil, nonce, []byte("tinyfs"), nil)
	if opened, err := aead.Open(nil, nonce, sealed, nil); err != nil || string(opened) != "tinyfs" {
		return fmt.Errorf("%w: AES-GCM self test failed", models.ErrUnsupportedPlatform)
	}
	return nil
}

type aesGCMCipher struct{}

// NewAESGCM returns the AES-256-GCM [Cipher]. It runs [Probe] and fails with
// models.ErrUnsupportedPlatform instead of handing out a cipher that would
// break on first use.
func NewAESGCM() (Cipher, error) {
	if err := Probe(); err != nil {
		return nil, err
	}
	return &aesGCMCipher{}, nil
}

// Encrypt implements [Cipher].
func (c *aesGCMCipher) Encrypt(plaintext []byte, cred Credential) ([]byte, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	if cred.IsPassword() {
		return EncryptWithPassword(plaintext, cred.password)
	}
	return EncryptWithKey(plaintext, cred.key)
}

// Decrypt implements [Cipher].
func (c *aesGCMCipher) Decrypt(buffer []byte, cred Credential) ([]byte, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	if cred.IsPassword() {
		return DecryptWithPassword(buffer, cred.password)
	}
	return DecryptWithKey(buffer, cred.key)
}

// EncryptWithKey seals plaintext under a raw 32-byte key and returns
// nonce ‖ tag ‖ ciphertext.
func EncryptWithKey(plaintext, key []byte) ([]byte, error) {
	aead, err := gcm(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal yields ciphertext ‖ tag; the container format stores the tag first.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	ct, tag := sealed[:len(plaintext)], sealed[len(plaintext):]

	out := make([]byte, 0, Overhead+len(plaintext))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ct...)
	return out, nil
}

// DecryptWithKey opens a nonce ‖ tag ‖ ciphertext buffer with a raw key.
func DecryptWithKey(buffer, key []byte) ([]byte, error) {
	if len(buffer) < Overhead {
		return nil, ErrCiphertextTooShort
	}
	aead, err := gcm(key)
	if err != nil {
		return nil, err
	}

	nonce := buffer[:NonceSize]
	tag := buffer[NonceSize:Overhead]
	ct := buffer[Overhead:]

	sealed := make([]byte, 0, len(ct)+TagSize)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// EncryptWithPassword derives a key from password and a fresh salt and
// returns salt ‖ EncryptWithKey(plaintext, key).
func EncryptWithPassword(plaintext []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	sealed, err := EncryptWithKey(plaintext, DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}
	return append(salt, sealed...), nil
}

// DecryptWithPassword strips the salt prefix, derives the key and opens the
// rest with [DecryptWithKey].
func DecryptWithPassword(buffer []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if len(buffer) < MaxOverhead {
		return nil, ErrCiphertextTooShort
	}
	salt := buffer[:SaltSize]
	return DecryptWithKey(buffer[SaltSize:], DeriveKey(password, salt))
}

// DeriveKey stretches password into a 256-bit key with PBKDF2-SHA256.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}

func gcm(key []byte) (cipher.AEAD, error) {
	if err := Probe(); err != nil {
		return nil, err
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return aead, nil
}
