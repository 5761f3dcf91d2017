package googlevision

import (
	"context"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
	"kyc.gateman.io/infrastructure/logger"
	"kyc.gateman.io/infrastructure/ocr/types"
)

// Recognizer sends images to the Cloud Vision text detection API. Page
// segmentation options have no Vision equivalent and are ignored.
type Recognizer struct {
	client *vision.ImageAnnotatorClient
}

// NewRecognizer uses credentialsFile when set, falling back to application
// default credentials.
func NewRecognizer(ctx context.Context, credentialsFile string) (*Recognizer, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init vision client: %w", err)
	}
	return &Recognizer{client: client}, nil
}

func (r *Recognizer) Recognize(ctx context.Context, imagePath string, _ types.RecognizeOptions) (string, error) {
	content, err := os.ReadFile(imagePath)
	if err != nil {
		return "", err
	}

	annotations, err := r.client.DetectTexts(ctx, &visionpb.Image{Content: content}, nil, 1)
	if err != nil {
		return "", fmt.Errorf("vision text detection failed: %w", err)
	}
	if len(annotations) == 0 {
		logger.Info("vision found no text in image")
		return "", nil
	}
	return annotations[0].Description, nil
}

func (r *Recognizer) Close() error {
	return r.client.Close()
}
