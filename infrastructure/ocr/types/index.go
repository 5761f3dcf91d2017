package types

//go:generate mockgen -source=index.go -destination=mocks/mocks.go -package=mocks

import "context"

// PageSegMode mirrors tesseract's page segmentation modes. Engines without
// the concept ignore it.
type PageSegMode int

const (
	PageSegAuto        PageSegMode = 3
	PageSegSingleBlock PageSegMode = 6
)

type RecognizeOptions struct {
	PageSegMode PageSegMode
}

type TextRecognizerType interface {
	// Recognize returns the raw text found in the image. Unreadable content
	// yields "" rather than an error.
	Recognize(ctx context.Context, imagePath string, opts RecognizeOptions) (string, error)
	Close() error
}
