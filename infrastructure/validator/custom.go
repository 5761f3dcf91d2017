package validator

import (
	"github.com/go-playground/validator/v10"
	"kyc.gateman.io/application/constants"
)

// declared content types are trusted as-is; file bytes are never sniffed.
func validateImageContentType(fl validator.FieldLevel) bool {
	_, ok := constants.ALLOWED_IMAGE_TYPES[fl.Field().String()]
	return ok
}

func validateVideoContentType(fl validator.FieldLevel) bool {
	_, ok := constants.ALLOWED_VIDEO_TYPES[fl.Field().String()]
	return ok
}
