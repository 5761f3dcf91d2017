package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"kyc.gateman.io/application/constants"
	"kyc.gateman.io/infrastructure/logger"
	speech_types "kyc.gateman.io/infrastructure/speech/types"
)

const stderrTailBytes = 512

// Extractor shells out to the ffmpeg binary.
type Extractor struct {
	Binary string
}

func NewExtractor(binary string) *Extractor {
	return &Extractor{Binary: binary}
}

func (e *Extractor) Extract(ctx context.Context, videoPath string, audioPath string) error {
	args := []string{
		"-y",
		"-i", videoPath,
		"-ar", strconv.Itoa(constants.AUDIO_SAMPLE_RATE),
		"-ac", "1",
		audioPath,
	}
	cmd := exec.CommandContext(ctx, e.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Error("ffmpeg audio extraction failed", logger.LoggerOptions{
			Key: "ffmpeg",
			Data: map[string]interface{}{
				"binary": e.Binary,
				"video":  videoPath,
				"error":  err.Error(),
			},
		})
		return fmt.Errorf("%w: %v: %s", speech_types.ErrAudioExtraction, err, tail(stderr.String()))
	}
	return nil
}

func tail(output string) string {
	output = strings.TrimSpace(output)
	if len(output) > stderrTailBytes {
		output = output[len(output)-stderrTailBytes:]
	}
	return output
}
