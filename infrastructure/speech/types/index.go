package types

//go:generate mockgen -source=index.go -destination=mocks/mocks.go -package=mocks

import "context"

type AudioExtractorType interface {
	// Extract writes the audio track of videoPath to audioPath as 16 kHz mono WAV.
	Extract(ctx context.Context, videoPath string, audioPath string) error
}

type TranscriberType interface {
	// Transcribe returns the spoken text of a WAV file. Provider failures are
	// returned as *TranscriptionError.
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Close() error
}
