package types

//go:generate mockgen -source=index.go -destination=mocks/mocks.go -package=mocks

import "context"

type BarcodeDecoderType interface {
	// Decode returns every payload found in the image, in reader order. An
	// image without a code yields an empty slice and a nil error.
	Decode(ctx context.Context, imagePath string) ([]string, error)
}
