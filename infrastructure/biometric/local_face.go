package biometric

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"
	"kyc.gateman.io/infrastructure/env"
	"kyc.gateman.io/infrastructure/imaging"
	"kyc.gateman.io/infrastructure/logger"
)

// LocalFaceModel runs face detection and embedding in-process with OpenCV.
// Images without a detectable face are used whole.
type LocalFaceModel struct {
	Detector   *HaarFaceDetector
	Recognizer *FaceNetRecognizer
}

func NewLocalFaceModel(cfg *env.Config) (*LocalFaceModel, error) {
	detector, err := NewHaarFaceDetector(cfg.FaceCascadePath)
	if err != nil {
		return nil, err
	}
	recognizer, err := NewFaceNetRecognizer(GetDefaultFaceNetConfig(cfg.FaceModelPath, int(cfg.FaceInputSize)))
	if err != nil {
		detector.Close()
		return nil, err
	}
	return &LocalFaceModel{Detector: detector, Recognizer: recognizer}, nil
}

func (m *LocalFaceModel) CropFace(ctx context.Context, src string, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := readImage(src)
	if err != nil {
		return err
	}
	defer img.Close()

	face := m.faceRegion(img, src)
	defer face.Close()

	if ok := gocv.IMWrite(dst, face); !ok {
		return fmt.Errorf("failed to write face crop to %s", dst)
	}
	return nil
}

func (m *LocalFaceModel) Distance(ctx context.Context, imageA string, imageB string) (float64, error) {
	embeddingA, err := m.embed(ctx, imageA)
	if err != nil {
		return 0, err
	}
	embeddingB, err := m.embed(ctx, imageB)
	if err != nil {
		return 0, err
	}
	return CosineDistance(embeddingA, embeddingB), nil
}

func (m *LocalFaceModel) embed(ctx context.Context, path string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := readImage(path)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	face := m.faceRegion(img, path)
	defer face.Close()

	return m.Recognizer.ExtractEmbedding(face)
}

// faceRegion returns a copy of the first detected face, or of the whole image.
func (m *LocalFaceModel) faceRegion(img gocv.Mat, path string) gocv.Mat {
	rect, found := m.Detector.FirstFace(img)
	if !found {
		logger.Warning("no face detected, using whole image", logger.LoggerOptions{
			Key:  "image",
			Data: path,
		})
		return img.Clone()
	}
	region := img.Region(rect)
	defer region.Close()
	return region.Clone()
}

func (m *LocalFaceModel) Close() error {
	detectorErr := m.Detector.Close()
	if err := m.Recognizer.Close(); err != nil {
		return err
	}
	return detectorErr
}

func readImage(path string) (gocv.Mat, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		img.Close()
		return gocv.Mat{}, fmt.Errorf("%w: %s", imaging.ErrUnreadableImage, path)
	}
	return img, nil
}
