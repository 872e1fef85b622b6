// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tinyfs/internal/compression"
	"github.com/MKhiriev/tinyfs/internal/config"
	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/store"
	"github.com/MKhiriev/tinyfs/internal/tinyfs"
	"github.com/MKhiriev/tinyfs/internal/utils"
	"github.com/MKhiriev/tinyfs/models"
)

type containerService struct {
	storage    store.ContainerStorage
	compressor compression.Compressor
	defaults   config.Codec
	logger     *logger.Logger
}

// NewContainerService builds the [ContainerService]. cfg supplies the gzip
// level and the flags given to newly created containers.
func NewContainerService(storage store.ContainerStorage, cfg config.Codec, logger *logger.Logger) (ContainerService, error) {
	level := cfg.CompressionLevel
	if level == 0 {
		level = compression.DefaultLevel
	}
	compressor, err := compression.NewGzipCompressor(level)
	if err != nil {
		return nil, err
	}

	return &containerService{
		storage:    storage,
		compressor: compressor,
		defaults:   cfg,
		logger:     logger,
	}, nil
}

func (s *containerService) Open(ctx context.Context, path string, cred crypto.Credential) (*tinyfs.Container, error) {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.Debug().Str("path", path).Msg("container does not exist, starting empty")
		return s.newContainer()
	}
	return s.load(ctx, path, cred)
}

func (s *containerService) Info(ctx context.Context, path string) (models.ContainerInfo, error) {
	return s.storage.ReadInfo(ctx, path)
}

func (s *containerService) List(ctx context.Context, path string, cred crypto.Credential) ([]models.EntryInfo, error) {
	c, err := s.load(ctx, path, cred)
	if err != nil {
		return nil, err
	}

	entries := c.Entries()
	list := make([]models.EntryInfo, 0, len(entries))
	for _, e := range entries {
		list = append(list, s.Describe(e))
	}
	return list, nil
}

func (s *containerService) Add(ctx context.Context, path string, req models.AddRequest, cred crypto.Credential) (models.EntryInfo, error) {
	c, err := s.Open(ctx, path, cred)
	if err != nil {
		return models.EntryInfo{}, err
	}

	e, err := c.Set(req.Name, req.Data)
	if err != nil {
		return models.EntryInfo{}, fmt.Errorf("set entry %q: %w", req.Name, err)
	}
	if req.Compress && !e.IsCompressed() {
		if err = e.SetCompressed(true); err != nil {
			return models.EntryInfo{}, fmt.Errorf("compress entry %q: %w", req.Name, err)
		}
	}

	if err = s.Save(ctx, path, c, cred); err != nil {
		return models.EntryInfo{}, err
	}

	info := s.Describe(e)
	s.logger.Info().
		Str("path", path).
		Str("entry", info.Name).
		Int("size", info.Size).
		Int("stored_size", info.StoredSize).
		Bool("compressed", info.Compressed).
		Msg("entry stored")
	return info, nil
}

func (s *containerService) Extract(ctx context.Context, path, name string, cred crypto.Credential) ([]byte, error) {
	c, err := s.load(ctx, path, cred)
	if err != nil {
		return nil, err
	}
	e, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Data(), nil
}

func (s *containerService) Remove(ctx context.Context, path, name string, cred crypto.Credential) error {
	c, err := s.load(ctx, path, cred)
	if err != nil {
		return err
	}
	if _, err = c.Delete(name); err != nil {
		return fmt.Errorf("delete entry %q: %w", name, err)
	}
	if err = s.Save(ctx, path, c, cred); err != nil {
		return err
	}

	s.logger.Info().Str("path", path).Str("entry", name).Msg("entry removed")
	return nil
}

func (s *containerService) Encrypt(ctx context.Context, path string, cred crypto.Credential) error {
	if cred.IsZero() {
		return models.ErrCredentialsRequired
	}
	info, err := s.storage.ReadInfo(ctx, path)
	if err != nil {
		return err
	}
	if info.Encrypted {
		return ErrAlreadyEncrypted
	}

	c, err := s.load(ctx, path, crypto.Credential{})
	if err != nil {
		return err
	}

	c.SetEncrypted(true)
	if err = s.Save(ctx, path, c, cred); err != nil {
		return err
	}

	s.logger.Info().Str("path", path).Bool("encrypted", true).Str("credential", cred.String()).Msg("container encrypted")
	return nil
}

func (s *containerService) Decrypt(ctx context.Context, path string, cred crypto.Credential) error {
	info, err := s.storage.ReadInfo(ctx, path)
	if err != nil {
		return err
	}
	if !info.Encrypted {
		return ErrNotEncrypted
	}

	c, err := s.load(ctx, path, cred)
	if err != nil {
		return err
	}

	c.SetEncrypted(false)
	if err = s.Save(ctx, path, c, crypto.Credential{}); err != nil {
		return err
	}

	s.logger.Info().Str("path", path).Bool("encrypted", false).Msg("container decrypted")
	return nil
}

func (s *containerService) SetFlags(ctx context.Context, path string, cred crypto.Credential, update models.FlagUpdate) (models.ContainerInfo, error) {
	if update.IsEmpty() {
		return models.ContainerInfo{}, ErrNoFlagChanges
	}
	c, err := s.load(ctx, path, cred)
	if err != nil {
		return models.ContainerInfo{}, err
	}

	if update.CaseInsensitive != nil {
		if err = c.SetCaseInsensitive(*update.CaseInsensitive); err != nil {
			return models.ContainerInfo{}, err
		}
	}
	if update.UTF8Names != nil {
		c.SetUTF8Names(*update.UTF8Names)
	}

	if err = s.Save(ctx, path, c, cred); err != nil {
		return models.ContainerInfo{}, err
	}

	s.logger.Info().Str("path", path).Stringer("flags", c.Flags()).Msg("container flags updated")
	return s.storage.ReadInfo(ctx, path)
}

func (s *containerService) Save(ctx context.Context, path string, c *tinyfs.Container, cred crypto.Credential) error {
	raw, err := c.Bytes(cred)
	if err != nil {
		return fmt.Errorf("serialize container: %w", err)
	}
	if err = s.storage.Write(ctx, path, raw); err != nil {
		return fmt.Errorf("write container: %w", err)
	}

	s.logger.Debug().
		Str("path", path).
		Int("entries", c.Len()).
		Int("size", len(raw)).
		Bool("encrypted", c.IsEncrypted()).
		Msg("container saved")
	return nil
}

func (s *containerService) Describe(e *tinyfs.Entry) models.EntryInfo {
	data := e.Data()
	info := models.EntryInfo{
		Name:       e.Name(),
		Size:       e.Size(),
		StoredSize: e.StoredSize(),
		Compressed: e.IsCompressed(),
		Digest:     utils.DigestString(data),
	}
	if !info.Compressed {
		recommended, err := e.IsCompressionRecommended()
		if err != nil {
			s.logger.Warn().Err(err).Str("entry", info.Name).Msg("compression estimate failed")
		}
		info.CompressionRecommended = recommended
	}
	return info
}

func (s *containerService) load(ctx context.Context, path string, cred crypto.Credential) (*tinyfs.Container, error) {
	rc, err := s.storage.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	c, err := tinyfs.Load(rc, cred, tinyfs.WithCompressor(s.compressor))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Int("entries", c.Len()).
		Bool("encrypted", c.IsEncrypted()).
		Msg("container loaded")
	return c, nil
}

func (s *containerService) newContainer() (*tinyfs.Container, error) {
	c := tinyfs.New(tinyfs.WithCompressor(s.compressor))
	if err := c.SetCaseInsensitive(s.defaults.CaseInsensitive); err != nil {
		return nil, err
	}
	c.SetUTF8Names(s.defaults.UTF8Names)
	return c, nil
}
