package types

//go:generate mockgen -source=types.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
)

type FileStoreType interface {
	// Save stores content under a fresh unique name that keeps only the
	// extension of originalName, and returns the stored path.
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
	Delete(path string) error
}
