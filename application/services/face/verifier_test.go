package face

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"kyc.gateman.io/entities"
	biometric_mocks "kyc.gateman.io/infrastructure/biometric/types/mocks"
)

func newVerifier(t *testing.T) (*Verifier, *biometric_mocks.MockFaceModelType) {
	ctrl := gomock.NewController(t)
	model := biometric_mocks.NewMockFaceModelType(ctrl)
	return &Verifier{Model: model, Threshold: 0.75}, model
}

func TestVerifyThreshold(t *testing.T) {
	cases := []struct {
		name             string
		distance         float64
		expectedDistance float64
		expectedStatus   entities.MatchStatus
	}{
		{"close match", 0.31234567, 0.3123, entities.MatchVerified},
		{"just under threshold", 0.74994, 0.7499, entities.MatchVerified},
		{"rounds up to threshold", 0.74996, 0.75, entities.MatchVerified},
		{"at threshold", 0.75, 0.75, entities.MatchNotMatched},
		{"far apart", 1.2, 1.2, entities.MatchNotMatched},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verifier, model := newVerifier(t)
			ctx := context.Background()
			workdir := t.TempDir()
			crop := filepath.Join(workdir, documentFaceFile)

			gomock.InOrder(
				model.EXPECT().CropFace(ctx, "id.png", crop).Return(nil),
				model.EXPECT().Distance(ctx, "selfie.jpg", crop).Return(tc.distance, nil),
			)

			result, err := verifier.Verify(ctx, "selfie.jpg", "id.png", workdir)
			require.NoError(t, err)
			require.NotNil(t, result.Distance)
			assert.Nil(t, result.MatchScore)
			assert.InDelta(t, tc.expectedDistance, *result.Distance, 1e-9)
			assert.Equal(t, tc.expectedStatus, result.Status)
		})
	}
}

func TestVerifyPropagatesModelErrors(t *testing.T) {
	t.Run("crop failure skips distance", func(t *testing.T) {
		verifier, model := newVerifier(t)
		model.EXPECT().CropFace(gomock.Any(), "id.png", gomock.Any()).Return(errors.New("model not loaded"))

		result, err := verifier.Verify(context.Background(), "selfie.jpg", "id.png", t.TempDir())
		assert.Nil(t, result)
		assert.EqualError(t, err, "model not loaded")
	})

	t.Run("distance failure", func(t *testing.T) {
		verifier, model := newVerifier(t)
		model.EXPECT().CropFace(gomock.Any(), "id.png", gomock.Any()).Return(nil)
		model.EXPECT().Distance(gomock.Any(), "selfie.jpg", gomock.Any()).Return(0.0, errors.New("inference failed"))

		result, err := verifier.Verify(context.Background(), "selfie.jpg", "id.png", t.TempDir())
		assert.Nil(t, result)
		assert.EqualError(t, err, "inference failed")
	})
}
