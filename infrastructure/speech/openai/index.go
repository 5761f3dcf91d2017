package openai

import (
	"context"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
	"kyc.gateman.io/infrastructure/logger"
	speech_types "kyc.gateman.io/infrastructure/speech/types"
)

const providerName = "openai"

// Transcriber sends audio to the OpenAI transcription endpoint.
type Transcriber struct {
	client  *goopenai.Client
	Model   string
	Timeout time.Duration
}

func NewTranscriber(apiKey string, model string, timeout time.Duration) *Transcriber {
	return NewTranscriberWithConfig(goopenai.DefaultConfig(apiKey), model, timeout)
}

func NewTranscriberWithConfig(config goopenai.ClientConfig, model string, timeout time.Duration) *Transcriber {
	if model == "" {
		model = goopenai.Whisper1
	}
	return &Transcriber{
		client:  goopenai.NewClientWithConfig(config),
		Model:   model,
		Timeout: timeout,
	}
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	response, err := t.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    t.Model,
		FilePath: audioPath,
	})
	if err != nil {
		logger.Error("whisper transcription failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return "", &speech_types.TranscriptionError{Provider: providerName, Err: err}
	}
	return response.Text, nil
}

func (t *Transcriber) Close() error {
	return nil
}
