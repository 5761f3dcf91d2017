package video

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"kyc.gateman.io/entities"
	"kyc.gateman.io/infrastructure/logger"
	speech_types "kyc.gateman.io/infrastructure/speech/types"
)

const audioFile = "audio.wav"

// Score is the character-level sequence similarity of the lowercased
// transcript and name, as a truncated percentage.
func Score(transcript string, name string) int {
	a := strings.Split(strings.ToLower(transcript), "")
	b := strings.Split(strings.ToLower(name), "")
	ratio := difflib.NewMatcher(a, b).Ratio()
	return int(ratio * 100)
}

// Verifier checks that the person in a video says the name on the document.
type Verifier struct {
	Audio       speech_types.AudioExtractorType
	Transcriber speech_types.TranscriberType
	Threshold   int
}

// Verify never returns NOT_MATCHED: a low score asks for review. Extraction
// and transcription failures are returned as errors.
func (v *Verifier) Verify(ctx context.Context, videoPath string, name string, workdir string) (*entities.MatchResult, error) {
	audioPath := filepath.Join(workdir, audioFile)
	if err := v.Audio.Extract(ctx, videoPath, audioPath); err != nil {
		return nil, err
	}

	transcript, err := v.Transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	score := Score(transcript, name)
	logger.Info("video transcript scored", logger.LoggerOptions{
		Key: "video",
		Data: map[string]interface{}{
			"score":             score,
			"transcript_length": len(transcript),
		},
	})

	if score >= v.Threshold {
		return entities.NewScoreResult(score, entities.MatchVerified), nil
	}
	return entities.NewScoreResult(score, entities.MatchReviewRequired), nil
}
