package opencv

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"
	"kyc.gateman.io/infrastructure/imaging"
	"kyc.gateman.io/infrastructure/logger"
)

// DocumentPreprocessor cleans address-proof scans before OCR.
type DocumentPreprocessor struct{}

func NewDocumentPreprocessor() *DocumentPreprocessor {
	return &DocumentPreprocessor{}
}

// PrepareForOCR converts to grayscale, applies a 9px bilateral filter (sigma
// 75/75) and an Otsu binary threshold, then writes the result to dst.
func (p *DocumentPreprocessor) PrepareForOCR(ctx context.Context, src string, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img := gocv.IMRead(src, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("%w: %s", imaging.ErrUnreadableImage, src)
	}
	defer img.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	denoised := gocv.NewMat()
	defer denoised.Close()
	gocv.BilateralFilter(gray, &denoised, 9, 75, 75)

	binary := gocv.NewMat()
	defer binary.Close()
	threshold := gocv.Threshold(denoised, &binary, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)

	if ok := gocv.IMWrite(dst, binary); !ok {
		return fmt.Errorf("failed to write preprocessed image to %s", dst)
	}
	logger.Info("address proof preprocessed", logger.LoggerOptions{
		Key:  "otsu_threshold",
		Data: threshold,
	})
	return nil
}
