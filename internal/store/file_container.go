// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/tinyfs"
	"github.com/MKhiriev/tinyfs/internal/utils"
	"github.com/MKhiriev/tinyfs/models"
)

const defaultFileMode fs.FileMode = 0o600

type containerFileStorage struct {
	fs     afero.Fs
	names  *utils.UUIDGenerator
	logger *logger.Logger
}

// NewContainerFileStorage returns a [ContainerStorage] over an afero
// filesystem.
func NewContainerFileStorage(fs afero.Fs, logger *logger.Logger) ContainerStorage {
	return &containerFileStorage{
		fs:     fs,
		names:  utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (s *containerFileStorage) Exists(ctx context.Context, path string) (bool, error) {
	if err := check(ctx, path); err != nil {
		return false, err
	}
	info, err := s.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return true, nil
}

func (s *containerFileStorage) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := check(ctx, path); err != nil {
		return nil, err
	}
	f, err := s.fs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotExist, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	s.logger.Debug().Str("path", path).Int64("size", info.Size()).Msg("container opened")
	return f, nil
}

func (s *containerFileStorage) ReadInfo(ctx context.Context, path string) (models.ContainerInfo, error) {
	rc, err := s.Read(ctx, path)
	if err != nil {
		return models.ContainerInfo{}, err
	}
	defer rc.Close()

	flags, err := tinyfs.ReadInfo(rc)
	if err != nil {
		return models.ContainerInfo{}, fmt.Errorf("read header of %s: %w", path, err)
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return models.ContainerInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return models.ContainerInfo{
		Path:            path,
		Size:            info.Size(),
		CaseInsensitive: flags.Has(tinyfs.CaseInsensitive),
		Encrypted:       flags.Has(tinyfs.Encrypted),
		UTF8Names:       flags.Has(tinyfs.UTF8Names),
	}, nil
}

// Write stores data in a uniquely named temp file next to path and renames
// it over path, so readers see either the old or the new container.
func (s *containerFileStorage) Write(ctx context.Context, path string, data []byte) (err error) {
	if err = check(ctx, path); err != nil {
		return err
	}

	mode := defaultFileMode
	if info, statErr := s.fs.Stat(path); statErr == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
		}
		mode = info.Mode().Perm()
	}

	tmp := s.names.TempName(path)
	f, err := s.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			if rmErr := s.fs.Remove(tmp); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				s.logger.Warn().Err(rmErr).Str("path", tmp).Msg("failed to remove temp file")
			}
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("size", len(data)).Msg("container written")
	return nil
}

func check(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return ErrEmptyPath
	}
	return nil
}
