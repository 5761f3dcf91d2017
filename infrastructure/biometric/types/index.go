package types

//go:generate mockgen -source=index.go -destination=mocks/mocks.go -package=mocks

import "context"

type FaceModelType interface {
	// CropFace writes the first detected face of src to dst. When no face is
	// found the whole image is written.
	CropFace(ctx context.Context, src string, dst string) error
	// Distance returns the cosine distance between the faces in imageA and imageB.
	Distance(ctx context.Context, imageA string, imageB string) (float64, error)
	Close() error
}
