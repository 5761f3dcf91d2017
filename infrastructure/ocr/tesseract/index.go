package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"kyc.gateman.io/infrastructure/logger"
	"kyc.gateman.io/infrastructure/ocr/types"
)

// TessClient is the subset of the gosseract client used here.
type TessClient interface {
	SetLanguage(langs ...string) error
	SetPageSegMode(mode gosseract.PageSegMode) error
	SetImage(path string) error
	Text() (string, error)
	Close() error
}

// Recognizer runs local tesseract. gosseract clients are not safe for
// concurrent use, so each call gets its own client.
type Recognizer struct {
	Languages []string
	NewClient func() TessClient
}

func NewRecognizer(languages string) *Recognizer {
	return &Recognizer{
		Languages: strings.Split(languages, "+"),
		NewClient: func() TessClient { return gosseract.NewClient() },
	}
}

func (r *Recognizer) Recognize(ctx context.Context, imagePath string, opts types.RecognizeOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := r.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.Languages...); err != nil {
		return "", fmt.Errorf("tesseract: set language: %w", err)
	}
	if err := client.SetPageSegMode(pageSegMode(opts.PageSegMode)); err != nil {
		return "", fmt.Errorf("tesseract: set page segmentation mode: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("tesseract: load image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: recognize: %w", err)
	}

	logger.Info("tesseract recognition completed", logger.LoggerOptions{
		Key: "ocr",
		Data: map[string]any{
			"page_seg_mode": int(opts.PageSegMode),
			"characters":    len(text),
		},
	})
	return text, nil
}

func (r *Recognizer) Close() error {
	return nil
}

func pageSegMode(mode types.PageSegMode) gosseract.PageSegMode {
	switch mode {
	case types.PageSegSingleBlock:
		return gosseract.PSM_SINGLE_BLOCK
	default:
		return gosseract.PSM_AUTO
	}
}
