package face

import (
	"context"
	"math"
	"path/filepath"

	"kyc.gateman.io/entities"
	biometric_types "kyc.gateman.io/infrastructure/biometric/types"
	"kyc.gateman.io/infrastructure/logger"
)

const documentFaceFile = "doc_face.jpg"

// Verifier compares a selfie against the face printed on an ID document.
type Verifier struct {
	Model     biometric_types.FaceModelType
	Threshold float64
}

// Verify crops the document face into workdir and matches it against the
// selfie. Distances below Threshold are VERIFIED; the result carries the
// distance rounded to 4 decimal places.
func (v *Verifier) Verify(ctx context.Context, selfiePath string, idImagePath string, workdir string) (*entities.MatchResult, error) {
	documentFace := filepath.Join(workdir, documentFaceFile)
	if err := v.Model.CropFace(ctx, idImagePath, documentFace); err != nil {
		logger.Error("failed to crop document face", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	distance, err := v.Model.Distance(ctx, selfiePath, documentFace)
	if err != nil {
		logger.Error("failed to compute face distance", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	// the threshold applies to the raw distance; only the reported value is rounded
	if distance < v.Threshold {
		return entities.NewDistanceResult(roundDistance(distance), entities.MatchVerified), nil
	}
	return entities.NewDistanceResult(roundDistance(distance), entities.MatchNotMatched), nil
}

func roundDistance(distance float64) float64 {
	return math.Round(distance*10000) / 10000
}
