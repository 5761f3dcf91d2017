package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"kyc.gateman.io/entities"
	barcode_mocks "kyc.gateman.io/infrastructure/barcode/types/mocks"
	"kyc.gateman.io/infrastructure/imaging"
	imaging_mocks "kyc.gateman.io/infrastructure/imaging/types/mocks"
	ocr_types "kyc.gateman.io/infrastructure/ocr/types"
	ocr_mocks "kyc.gateman.io/infrastructure/ocr/types/mocks"
)

type extractorFixture struct {
	barcodes     *barcode_mocks.MockBarcodeDecoderType
	ocr          *ocr_mocks.MockTextRecognizerType
	preprocessor *imaging_mocks.MockDocumentPreprocessorType
	extractor    *Extractor
}

func newExtractorFixture(t *testing.T) *extractorFixture {
	ctrl := gomock.NewController(t)
	f := &extractorFixture{
		barcodes:     barcode_mocks.NewMockBarcodeDecoderType(ctrl),
		ocr:          ocr_mocks.NewMockTextRecognizerType(ctrl),
		preprocessor: imaging_mocks.NewMockDocumentPreprocessorType(ctrl),
	}
	f.extractor = &Extractor{Barcodes: f.barcodes, OCR: f.ocr, Preprocessor: f.preprocessor}
	return f
}

var autoMode = ocr_types.RecognizeOptions{PageSegMode: ocr_types.PageSegAuto}

func TestExtractIdentityFromStructuredQR(t *testing.T) {
	f := newExtractorFixture(t)
	ctx := context.Background()

	f.barcodes.EXPECT().Decode(ctx, "front.png").Return([]string{legacyPayload, "ignored second code"}, nil)

	record, err := f.extractor.ExtractIdentity(ctx, "front.png")
	require.NoError(t, err)
	assert.Equal(t, entities.StructuredQRSource, record.Source)
	assert.Equal(t, "Asha Verma", *record.Name)
}

func TestExtractIdentityFallsBackToOCR(t *testing.T) {
	f := newExtractorFixture(t)
	ctx := context.Background()

	f.barcodes.EXPECT().Decode(ctx, "front.png").Return([]string{}, nil)
	f.ocr.EXPECT().Recognize(ctx, "front.png", autoMode).Return(aadhaarFrontText, nil)

	record, err := f.extractor.ExtractIdentity(ctx, "front.png")
	require.NoError(t, err)
	assert.Equal(t, entities.OCRSource, record.Source)
	assert.Equal(t, "Asha Verma", *record.Name)
	assert.Equal(t, "123456789012", *record.IDNumber)
	assert.Equal(t, entities.QRFormatNone, record.QRFormat)
}

func TestExtractIdentityWithSecureQRUsesOCR(t *testing.T) {
	f := newExtractorFixture(t)
	ctx := context.Background()

	f.barcodes.EXPECT().Decode(ctx, "front.png").Return([]string{"27364598172634598172634"}, nil)
	f.ocr.EXPECT().Recognize(ctx, "front.png", autoMode).Return(aadhaarFrontText, nil)

	record, err := f.extractor.ExtractIdentity(ctx, "front.png")
	require.NoError(t, err)
	assert.Equal(t, entities.OCRSource, record.Source)
	assert.Equal(t, entities.QRFormatSecure, record.QRFormat)
	assert.Equal(t, "ENCRYPTED", *record.Status)
	assert.Equal(t, "Asha Verma", *record.Name)
}

func TestExtractIdentityUnreadableImage(t *testing.T) {
	f := newExtractorFixture(t)
	ctx := context.Background()

	f.barcodes.EXPECT().Decode(ctx, "front.png").Return(nil, fmt.Errorf("%w: bad header", imaging.ErrUnreadableImage))

	record, err := f.extractor.ExtractIdentity(ctx, "front.png")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestExtractIdentityMalformedQR(t *testing.T) {
	f := newExtractorFixture(t)
	ctx := context.Background()

	f.barcodes.EXPECT().Decode(ctx, "front.png").Return([]string{`<PrintLetterBarcodeData name="Asha"`}, nil)

	_, err := f.extractor.ExtractIdentity(ctx, "front.png")
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestExtractIdentityOCRFailure(t *testing.T) {
	f := newExtractorFixture(t)
	ctx := context.Background()
	engineErr := errors.New("tesseract: init failed")

	f.barcodes.EXPECT().Decode(ctx, "front.png").Return(nil, nil)
	f.ocr.EXPECT().Recognize(ctx, "front.png", autoMode).Return("", engineErr)

	_, err := f.extractor.ExtractIdentity(ctx, "front.png")
	assert.ErrorIs(t, err, engineErr)
}

func TestReadQR(t *testing.T) {
	ctx := context.Background()

	t.Run("no code", func(t *testing.T) {
		f := newExtractorFixture(t)
		f.barcodes.EXPECT().Decode(ctx, "front.png").Return(nil, nil)

		qr, err := f.extractor.ReadQR(ctx, "front.png")
		require.NoError(t, err)
		assert.Nil(t, qr)
	})

	t.Run("secure code", func(t *testing.T) {
		f := newExtractorFixture(t)
		f.barcodes.EXPECT().Decode(ctx, "front.png").Return([]string{"98172634"}, nil)

		qr, err := f.extractor.ReadQR(ctx, "front.png")
		require.NoError(t, err)
		assert.Equal(t, entities.QRFormatSecure, qr.Format)
		assert.Equal(t, entities.SecureQRDocument, qr.Record.Type)
	})
}

func TestExtractDocumentAddress(t *testing.T) {
	ctx := context.Background()
	workdir := t.TempDir()
	prepared := filepath.Join(workdir, "address_proof_prepared.png")
	singleBlock := ocr_types.RecognizeOptions{PageSegMode: ocr_types.PageSegSingleBlock}

	t.Run("normalizes the whole page", func(t *testing.T) {
		f := newExtractorFixture(t)
		gomock.InOrder(
			f.preprocessor.EXPECT().PrepareForOCR(ctx, "bill.jpg", prepared).Return(nil),
			f.ocr.EXPECT().Recognize(ctx, prepared, singleBlock).Return("ELECTRICITY BILL\n12, MG Rd.\nShivaji Ngr, Pune 411005", nil),
		)

		got, err := f.extractor.ExtractDocumentAddress(ctx, "bill.jpg", workdir)
		require.NoError(t, err)
		assert.Equal(t, "electricity bill 12 mg road shivaji nagar pune 411005", got)
	})

	t.Run("unreadable image gives empty address", func(t *testing.T) {
		f := newExtractorFixture(t)
		f.preprocessor.EXPECT().PrepareForOCR(ctx, "bill.jpg", prepared).Return(imaging.ErrUnreadableImage)

		got, err := f.extractor.ExtractDocumentAddress(ctx, "bill.jpg", workdir)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ocr errors propagate", func(t *testing.T) {
		f := newExtractorFixture(t)
		engineErr := errors.New("vision: quota exceeded")
		f.preprocessor.EXPECT().PrepareForOCR(ctx, "bill.jpg", prepared).Return(nil)
		f.ocr.EXPECT().Recognize(ctx, prepared, singleBlock).Return("", engineErr)

		_, err := f.extractor.ExtractDocumentAddress(ctx, "bill.jpg", workdir)
		assert.ErrorIs(t, err, engineErr)
	})
}
