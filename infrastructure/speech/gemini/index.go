package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"kyc.gateman.io/infrastructure/logger"
	speech_types "kyc.gateman.io/infrastructure/speech/types"
)

const (
	providerName        = "gemini"
	transcriptionPrompt = "Transcribe the speech in this audio verbatim. Return only the spoken words, with no commentary."
)

// Transcriber prompts a Gemini model with the audio clip.
type Transcriber struct {
	client  *genai.Client
	Model   string
	Timeout time.Duration
}

func NewTranscriber(ctx context.Context, apiKey string, model string, timeout time.Duration) (*Transcriber, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to init gemini client: %w", err)
	}
	return &Transcriber{client: client, Model: model, Timeout: timeout}, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", &speech_types.TranscriptionError{Provider: providerName, Err: err}
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	model := t.client.GenerativeModel(t.Model)
	response, err := model.GenerateContent(ctx, genai.Blob{MIMEType: "audio/wav", Data: audio}, genai.Text(transcriptionPrompt))
	if err != nil {
		logger.Error("gemini transcription failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return "", &speech_types.TranscriptionError{Provider: providerName, Err: err}
	}

	text, err := responseText(response)
	if err != nil {
		return "", &speech_types.TranscriptionError{Provider: providerName, Err: err}
	}
	return text, nil
}

func responseText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0] == nil || response.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (t *Transcriber) Close() error {
	return t.client.Close()
}
