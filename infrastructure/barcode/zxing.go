package barcode

import (
	"context"
	"image"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
	"kyc.gateman.io/infrastructure/imaging"
	"kyc.gateman.io/infrastructure/logger"
)

// ZXingDecoder scans images for QR, DataMatrix and common 1D barcodes.
type ZXingDecoder struct {
	readers   func() []gozxing.Reader
	newBitmap func(img image.Image) (*gozxing.BinaryBitmap, error)
}

func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{readers: defaultReaders, newBitmap: gozxing.NewBinaryBitmapFromImage}
}

// readers are stateful, so every scan gets a fresh set. QR is tried first as
// it is the only format carrying identity payloads.
func defaultReaders() []gozxing.Reader {
	return []gozxing.Reader{
		qrcode.NewQRCodeReader(),
		datamatrix.NewDataMatrixReader(),
		oned.NewCode128Reader(),
		oned.NewCode39Reader(),
		oned.NewEAN13Reader(),
		oned.NewITFReader(),
	}
}

func (d *ZXingDecoder) Decode(ctx context.Context, imagePath string) ([]string, error) {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return nil, err
	}

	bmp, err := d.newBitmap(img)
	if err != nil {
		logger.Warning("image could not be binarized for barcode scan", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		})
		return []string{}, nil
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	payloads := []string{}
	for _, reader := range d.readers() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := reader.Decode(bmp, hints)
		if err != nil {
			// not found, checksum and format failures all mean "no code here"
			continue
		}
		payloads = append(payloads, strings.ToValidUTF8(result.GetText(), ""))
	}

	logger.Info("barcode scan completed", logger.LoggerOptions{
		Key:  "codes_found",
		Data: len(payloads),
	})
	return payloads, nil
}
