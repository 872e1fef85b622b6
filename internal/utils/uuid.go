// Package utils holds small helpers shared by the storage, service and
// front-end packages: temp file names, content digests and size formatting.
package utils

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TempName returns a hidden sibling of path that is unique per call, e.g.
// "dir/.archive.tfs.0190b2c4-....tmp".
func (g *UUIDGenerator) TempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, g.Generate()))
}
