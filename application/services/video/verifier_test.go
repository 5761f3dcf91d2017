package video

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"kyc.gateman.io/entities"
	speech_types "kyc.gateman.io/infrastructure/speech/types"
	speech_mocks "kyc.gateman.io/infrastructure/speech/types/mocks"
)

func TestScore(t *testing.T) {
	cases := []struct {
		transcript string
		name       string
		expected   int
	}{
		{"asha verma", "asha verma", 100},
		{"ASHA VERMA", "asha verma", 100},
		{"asha varma", "asha verma", 90},
		{"My name is Asha Verma", "Asha Verma", 64},
		{"hello", "Asha Verma", 26},
		{"", "asha", 0},
		{"", "", 100},
	}

	for _, tc := range cases {
		t.Run(tc.transcript+"/"+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Score(tc.transcript, tc.name))
		})
	}
}

type verifierFixture struct {
	audio       *speech_mocks.MockAudioExtractorType
	transcriber *speech_mocks.MockTranscriberType
	verifier    *Verifier
}

func newVerifierFixture(t *testing.T) *verifierFixture {
	ctrl := gomock.NewController(t)
	f := &verifierFixture{
		audio:       speech_mocks.NewMockAudioExtractorType(ctrl),
		transcriber: speech_mocks.NewMockTranscriberType(ctrl),
	}
	f.verifier = &Verifier{Audio: f.audio, Transcriber: f.transcriber, Threshold: 70}
	return f
}

func TestVerifyStatus(t *testing.T) {
	cases := []struct {
		transcript     string
		expectedScore  int
		expectedStatus entities.MatchStatus
	}{
		{"Asha Verma", 100, entities.MatchVerified},
		{"asha varma", 90, entities.MatchVerified},
		{"My name is Asha Verma", 64, entities.MatchReviewRequired},
		{"hello", 26, entities.MatchReviewRequired},
	}

	for _, tc := range cases {
		t.Run(tc.transcript, func(t *testing.T) {
			f := newVerifierFixture(t)
			ctx := context.Background()
			workdir := t.TempDir()
			audioPath := filepath.Join(workdir, audioFile)

			gomock.InOrder(
				f.audio.EXPECT().Extract(ctx, "clip.mp4", audioPath).Return(nil),
				f.transcriber.EXPECT().Transcribe(ctx, audioPath).Return(tc.transcript, nil),
			)

			result, err := f.verifier.Verify(ctx, "clip.mp4", "Asha Verma", workdir)
			require.NoError(t, err)
			require.NotNil(t, result.MatchScore)
			assert.Equal(t, tc.expectedScore, *result.MatchScore)
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.NotEqual(t, entities.MatchNotMatched, result.Status)
		})
	}
}

func TestVerifyPropagatesFailures(t *testing.T) {
	t.Run("audio extraction", func(t *testing.T) {
		f := newVerifierFixture(t)
		f.audio.EXPECT().Extract(gomock.Any(), "clip.mp4", gomock.Any()).Return(speech_types.ErrAudioExtraction)

		result, err := f.verifier.Verify(context.Background(), "clip.mp4", "Asha Verma", t.TempDir())
		assert.Nil(t, result)
		assert.ErrorIs(t, err, speech_types.ErrAudioExtraction)
	})

	t.Run("transcription", func(t *testing.T) {
		f := newVerifierFixture(t)
		f.audio.EXPECT().Extract(gomock.Any(), "clip.mp4", gomock.Any()).Return(nil)
		f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).
			Return("", &speech_types.TranscriptionError{Provider: "openai", Err: errors.New("timeout")})

		result, err := f.verifier.Verify(context.Background(), "clip.mp4", "Asha Verma", t.TempDir())
		assert.Nil(t, result)
		var transcriptionErr *speech_types.TranscriptionError
		assert.ErrorAs(t, err, &transcriptionErr)
	})
}
