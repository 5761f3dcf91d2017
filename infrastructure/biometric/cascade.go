package biometric

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"gocv.io/x/gocv"
	"kyc.gateman.io/infrastructure/logger"
)

var cascadeSearchDirs = []string{
	"/usr/local/share/opencv4/haarcascades",
	"/usr/share/opencv4/haarcascades",
	"/opt/homebrew/share/opencv4/haarcascades",
}

// HaarFaceDetector wraps a frontal-face cascade. CascadeClassifier is not safe
// for concurrent use, so detection is serialised.
type HaarFaceDetector struct {
	cascade gocv.CascadeClassifier
	mutex   sync.Mutex
}

func NewHaarFaceDetector(cascadePath string) (*HaarFaceDetector, error) {
	cascade := gocv.NewCascadeClassifier()
	candidates := append([]string{cascadePath}, alternativeCascadePaths(cascadePath)...)
	for _, path := range candidates {
		if cascade.Load(path) {
			logger.Info("face cascade loaded", logger.LoggerOptions{
				Key:  "path",
				Data: path,
			})
			return &HaarFaceDetector{cascade: cascade}, nil
		}
	}
	cascade.Close()
	return nil, fmt.Errorf("failed to load face cascade from %s or alternative paths", cascadePath)
}

func alternativeCascadePaths(cascadePath string) []string {
	name := filepath.Base(cascadePath)
	paths := make([]string, 0, len(cascadeSearchDirs))
	for _, dir := range cascadeSearchDirs {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

// FirstFace returns the first detection in img, if any.
func (d *HaarFaceDetector) FirstFace(img gocv.Mat) (image.Rectangle, bool) {
	gray := gocv.NewMat()
	defer gray.Close()
	if img.Channels() == 1 {
		img.CopyTo(&gray)
	} else {
		gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	}

	d.mutex.Lock()
	faces := d.cascade.DetectMultiScaleWithParams(gray, 1.1, 10, 0, image.Pt(0, 0), image.Pt(0, 0))
	d.mutex.Unlock()

	if len(faces) == 0 {
		return image.Rectangle{}, false
	}
	return faces[0], true
}

func (d *HaarFaceDetector) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.cascade.Close()
}
