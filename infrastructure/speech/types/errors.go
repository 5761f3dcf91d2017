package types

import (
	"errors"
	"fmt"
)

var ErrAudioExtraction = errors.New("audio extraction failed")

// TranscriptionError marks a failed speech-to-text call, as opposed to a
// transcript that simply does not match.
type TranscriptionError struct {
	Provider string
	Err      error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s transcription failed: %v", e.Provider, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
