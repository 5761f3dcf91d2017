package biometric

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
	"kyc.gateman.io/infrastructure/logger"
)

// FaceNetRecognizer turns a face crop into an embedding with a FaceNet ONNX model.
type FaceNetRecognizer struct {
	net       gocv.Net
	inputSize image.Point
	mutex     sync.Mutex
}

type FaceNetConfig struct {
	ModelPath string
	InputSize image.Point
	Backend   gocv.NetBackendType
	Target    gocv.NetTargetType
}

func GetDefaultFaceNetConfig(modelPath string, inputSize int) FaceNetConfig {
	return FaceNetConfig{
		ModelPath: modelPath,
		InputSize: image.Pt(inputSize, inputSize),
		Backend:   gocv.NetBackendDefault,
		Target:    gocv.NetTargetCPU,
	}
}

func NewFaceNetRecognizer(config FaceNetConfig) (*FaceNetRecognizer, error) {
	if _, err := os.Stat(config.ModelPath); err != nil {
		return nil, fmt.Errorf("facenet model not found at %s: %w", config.ModelPath, err)
	}

	net := gocv.ReadNet(config.ModelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to load facenet model from %s", config.ModelPath)
	}
	if err := net.SetPreferableBackend(config.Backend); err != nil {
		net.Close()
		return nil, err
	}
	if err := net.SetPreferableTarget(config.Target); err != nil {
		net.Close()
		return nil, err
	}

	logger.Info("facenet model loaded", logger.LoggerOptions{
		Key: "model",
		Data: map[string]interface{}{
			"path":       config.ModelPath,
			"input_size": fmt.Sprintf("%dx%d", config.InputSize.X, config.InputSize.Y),
		},
	})

	return &FaceNetRecognizer{net: net, inputSize: config.InputSize}, nil
}

func (fn *FaceNetRecognizer) ExtractEmbedding(face gocv.Mat) ([]float32, error) {
	if face.Empty() {
		return nil, errors.New("empty face image")
	}

	preprocessed := fn.preprocessFace(face)
	defer preprocessed.Close()

	blob := gocv.BlobFromImage(preprocessed, 1.0/255.0, fn.inputSize, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	fn.mutex.Lock()
	fn.net.SetInput(blob, "")
	output := fn.net.Forward("")
	fn.mutex.Unlock()
	defer output.Close()

	size := output.Total()
	if size == 0 {
		return nil, errors.New("facenet produced an empty embedding")
	}
	flat := output.Reshape(1, 1)
	defer flat.Close()

	embedding := make([]float32, size)
	for i := 0; i < size; i++ {
		embedding[i] = flat.GetFloatAt(0, i)
	}

	logger.Info("face embedding extracted", logger.LoggerOptions{
		Key: "embedding",
		Data: map[string]interface{}{
			"dimensions": size,
			"norm":       calculateNorm(embedding),
		},
	})
	return embedding, nil
}

func (fn *FaceNetRecognizer) preprocessFace(face gocv.Mat) gocv.Mat {
	resized := gocv.NewMat()
	gocv.Resize(face, &resized, fn.inputSize, 0, 0, gocv.InterpolationLinear)

	if resized.Channels() == 1 {
		bgr := gocv.NewMat()
		gocv.CvtColor(resized, &bgr, gocv.ColorGrayToBGR)
		resized.Close()
		return bgr
	}
	return resized
}

func (fn *FaceNetRecognizer) Close() error {
	fn.mutex.Lock()
	defer fn.mutex.Unlock()

	if fn.net.Empty() {
		return nil
	}
	if err := fn.net.Close(); err != nil {
		return fmt.Errorf("failed to close facenet network: %w", err)
	}
	return nil
}
