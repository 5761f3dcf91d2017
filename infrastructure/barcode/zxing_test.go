package barcode

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/makiuchi-d/gozxing"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kyc.gateman.io/infrastructure/imaging"
)

const structuredPayload = `<?xml version="1.0" encoding="UTF-8"?><PrintLetterBarcodeData uid="123456789012" name="Asha Verma" gender="F" yob="1990" house="12" street="MG Rd" vtc="Pune" state="Maharashtra" pc="411001"/>`

func writeQR(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "front.png")
	require.NoError(t, qrcode.WriteFile(content, qrcode.Medium, 512, path))
	return path
}

func TestDecodeStructuredQR(t *testing.T) {
	path := writeQR(t, structuredPayload)

	payloads, err := NewZXingDecoder().Decode(context.Background(), path)
	require.NoError(t, err)
	require.NotEmpty(t, payloads)
	assert.Equal(t, structuredPayload, payloads[0])
}

func TestDecodeImageWithoutCode(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Set(10, 10, color.Black)

	path := filepath.Join(t.TempDir(), "blank.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())

	payloads, err := NewZXingDecoder().Decode(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, payloads)
}

func TestDecodeUnreadableImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	_, err := NewZXingDecoder().Decode(context.Background(), path)
	assert.ErrorIs(t, err, imaging.ErrUnreadableImage)
}

func TestDecodeBinarizationFailureMeansNoCode(t *testing.T) {
	decoder := NewZXingDecoder()
	decoder.newBitmap = func(image.Image) (*gozxing.BinaryBitmap, error) {
		return nil, errors.New("binarizer must not be null")
	}

	payloads, err := decoder.Decode(context.Background(), writeQR(t, structuredPayload))
	require.NoError(t, err)
	assert.Empty(t, payloads)
}
