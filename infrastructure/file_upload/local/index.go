package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"kyc.gateman.io/application/utils"
	"kyc.gateman.io/infrastructure/logger"
)

// DiskStore keeps uploads in a single flat directory. Names are ULIDs, so
// concurrent requests never collide.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &DiskStore{Dir: dir}, nil
}

func (store *DiskStore) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(store.Dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(store.Dir, utils.GenerateUULDString()+filepath.Ext(filepath.Base(originalName)))
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(path)
		logger.Error("failed to write upload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Delete removes a stored upload. Missing files are ignored.
func (store *DiskStore) Delete(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
