// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/utils"
)

// FileStore persists uploaded artifacts (record scans, payment proofs)
// outside the relational database and serves them back by public URL.
type FileStore interface {
	// Save stores data under a randomized object name derived from name
	// and returns the public URL the object is reachable at.
	Save(ctx context.Context, bucket, name string, data []byte) (string, error)

	// Remove deletes one stored object by its bucket-relative path.
	Remove(ctx context.Context, bucket, objectPath string) error

	// Root returns the directory objects are stored under, for static
	// serving.
	Root() string
}

// diskFileStore keeps objects on the local filesystem, one subdirectory per
// bucket. Object names are prefixed with a random UUID so uploads with the
// same display name never collide.
type diskFileStore struct {
	dir           string
	publicBaseURL string
	uuid          *utils.UUIDGenerator
	logger        *logger.Logger
}

// NewDiskFileStore builds the on-disk bucket under cfg.Dir, creating the
// directory when missing.
func NewDiskFileStore(cfg config.Files, logger *logger.Logger) (FileStore, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("file store directory is not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create file store directory: %w", err)
	}

	return &diskFileStore{
		dir:           cfg.Dir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		uuid:          utils.NewUUIDGenerator(),
		logger:        logger,
	}, nil
}

func (s *diskFileStore) Save(ctx context.Context, bucket, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validBucket(bucket) {
		return "", ErrBucketInvalid
	}

	objectName := s.uuid.Generate() + "-" + sanitizeName(name)
	if err := os.MkdirAll(filepath.Join(s.dir, bucket), 0o755); err != nil {
		return "", fmt.Errorf("create bucket directory: %w", err)
	}

	dst := filepath.Join(s.dir, bucket, objectName)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}
	s.logger.Debug().Str("bucket", bucket).Str("object", objectName).Int("size", len(data)).Msg("stored file")

	return s.publicBaseURL + "/" + bucket + "/" + objectName, nil
}

func (s *diskFileStore) Remove(ctx context.Context, bucket, objectPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validBucket(bucket) || !validObjectPath(objectPath) {
		return ErrBucketInvalid
	}

	err := os.Remove(filepath.Join(s.dir, bucket, filepath.FromSlash(objectPath)))
	if os.IsNotExist(err) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("remove object: %w", err)
	}

	return nil
}

func (s *diskFileStore) Root() string {
	return s.dir
}

func validBucket(bucket string) bool {
	return bucket != "" && !strings.ContainsAny(bucket, "/\\") && bucket != "." && bucket != ".."
}

// validObjectPath refuses empty names and anything that would escape the
// bucket directory.
func validObjectPath(objectPath string) bool {
	if objectPath == "" || strings.Contains(objectPath, "\\") {
		return false
	}
	clean := path.Clean("/" + objectPath)
	return clean != "/" && !strings.Contains(clean, "..")
}

// sanitizeName reduces a display filename to a safe object name component.
func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" || name == "" {
		return "file"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
