package ocr

import (
	"context"
	"fmt"

	"kyc.gateman.io/infrastructure/env"
	"kyc.gateman.io/infrastructure/ocr/googlevision"
	"kyc.gateman.io/infrastructure/ocr/tesseract"
	"kyc.gateman.io/infrastructure/ocr/types"
)

// NewTextRecognizer builds the OCR engine selected by OCR_PROVIDER.
func NewTextRecognizer(ctx context.Context, cfg *env.Config) (types.TextRecognizerType, error) {
	switch cfg.OCRProvider {
	case "tesseract":
		return tesseract.NewRecognizer(cfg.TesseractLanguages), nil
	case "google_vision":
		recognizer, err := googlevision.NewRecognizer(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, err
		}
		return recognizer, nil
	default:
		return nil, fmt.Errorf("unsupported OCR provider %q", cfg.OCRProvider)
	}
}
