package speech

import (
	"context"
	"fmt"

	"kyc.gateman.io/infrastructure/env"
	"kyc.gateman.io/infrastructure/speech/ffmpeg"
	"kyc.gateman.io/infrastructure/speech/gemini"
	"kyc.gateman.io/infrastructure/speech/openai"
	"kyc.gateman.io/infrastructure/speech/types"
)

func NewAudioExtractor(cfg *env.Config) types.AudioExtractorType {
	return ffmpeg.NewExtractor(cfg.FFmpegPath)
}

// NewTranscriber builds the speech-to-text client selected by STT_PROVIDER.
func NewTranscriber(ctx context.Context, cfg *env.Config) (types.TranscriberType, error) {
	switch cfg.STTProvider {
	case "openai":
		return openai.NewTranscriber(cfg.OpenAIAPIKey, cfg.WhisperModel, cfg.ExternalCallTimeout), nil
	case "gemini":
		transcriber, err := gemini.NewTranscriber(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ExternalCallTimeout)
		if err != nil {
			return nil, err
		}
		return transcriber, nil
	default:
		return nil, fmt.Errorf("unsupported speech-to-text provider %q", cfg.STTProvider)
	}
}
