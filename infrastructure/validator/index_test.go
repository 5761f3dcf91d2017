package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleUpload struct {
	IDFront *string `form:"id_front" validate:"required"`
	Mode    string  `json:"mode" validate:"required,oneof=tesseract google_vision"`
	Workers int     `env:"WORKER_POOL_SIZE" validate:"gt=0"`
}

func TestValidateStructUsesTagNames(t *testing.T) {
	errs := ValidatorInstance.ValidateStruct(sampleUpload{Mode: "paddle"})
	require.NotNil(t, errs)

	messages := []string{}
	for _, err := range *errs {
		messages = append(messages, err.Error())
	}
	assert.Contains(t, messages, "id_front is required")
	assert.Contains(t, messages, "mode must be one of [tesseract google_vision]")
	assert.Contains(t, messages, "WORKER_POOL_SIZE must be greater than 0")
}

func TestValidateStructPasses(t *testing.T) {
	front := "front.png"
	assert.Nil(t, ValidatorInstance.ValidateStruct(sampleUpload{IDFront: &front, Mode: "tesseract", Workers: 2}))
}

func TestContentTypeRules(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		rule        string
		wantErr     bool
	}{
		{name: "jpeg image", contentType: "image/jpeg", rule: "image_mime"},
		{name: "png image", contentType: "image/png", rule: "image_mime"},
		{name: "webp image", contentType: "image/webp", rule: "image_mime"},
		{name: "gif image", contentType: "image/gif", rule: "image_mime", wantErr: true},
		{name: "pdf as image", contentType: "application/pdf", rule: "image_mime", wantErr: true},
		{name: "mp4 video", contentType: "video/mp4", rule: "video_mime"},
		{name: "webm video", contentType: "video/webm", rule: "video_mime"},
		{name: "quicktime video", contentType: "video/quicktime", rule: "video_mime", wantErr: true},
		{name: "image as video", contentType: "image/png", rule: "video_mime", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatorInstance.ValidateValue(tt.contentType, tt.rule)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "Invalid file type: "+tt.contentType, err.Error())
		})
	}
}
