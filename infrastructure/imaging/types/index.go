package types

//go:generate mockgen -source=index.go -destination=mocks/mocks.go -package=mocks

import "context"

type DocumentPreprocessorType interface {
	// PrepareForOCR writes a denoised, binarised copy of src to dst.
	PrepareForOCR(ctx context.Context, src string, dst string) error
}
