package document

import (
	"context"
	"errors"
	"path/filepath"

	"kyc.gateman.io/application/services/address"
	"kyc.gateman.io/entities"
	barcode_types "kyc.gateman.io/infrastructure/barcode/types"
	"kyc.gateman.io/infrastructure/imaging"
	imaging_types "kyc.gateman.io/infrastructure/imaging/types"
	"kyc.gateman.io/infrastructure/logger"
	ocr_types "kyc.gateman.io/infrastructure/ocr/types"
)

// Extractor recovers identity and address data from document images.
type Extractor struct {
	Barcodes     barcode_types.BarcodeDecoderType
	OCR          ocr_types.TextRecognizerType
	Preprocessor imaging_types.DocumentPreprocessorType
}

// QRExtraction is the outcome of a QR-only read of an ID image.
type QRExtraction struct {
	Format entities.QRFormat
	Record *entities.IdentityRecord
}

// ReadQR decodes the first code on the image and classifies it. A nil
// extraction with a nil error means no code was found.
func (e *Extractor) ReadQR(ctx context.Context, imagePath string) (*QRExtraction, error) {
	payloads, err := e.Barcodes.Decode(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, nil
	}

	payload := payloads[0]
	if Classify(payload) == entities.QRFormatSecure {
		return &QRExtraction{Format: entities.QRFormatSecure, Record: SecureQRRecord(payload)}, nil
	}
	record, err := ParseStructuredQR(payload)
	if err != nil {
		return nil, err
	}
	return &QRExtraction{Format: entities.QRFormatStructured, Record: record}, nil
}

// ExtractIdentity reads the ID image, preferring a structured QR payload and
// falling back to OCR heuristics. An image that cannot be decoded yields a nil
// record and a nil error; a malformed structured QR yields a *ParseError.
func (e *Extractor) ExtractIdentity(ctx context.Context, imagePath string) (*entities.IdentityRecord, error) {
	qr, err := e.ReadQR(ctx, imagePath)
	if errors.Is(err, imaging.ErrUnreadableImage) {
		logger.Warning("identity image could not be decoded", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if qr != nil && qr.Format == entities.QRFormatStructured {
		return qr.Record, nil
	}

	text, err := e.OCR.Recognize(ctx, imagePath, ocr_types.RecognizeOptions{PageSegMode: ocr_types.PageSegAuto})
	if err != nil {
		return nil, err
	}
	record := RecordFromOCR(text)
	if qr != nil {
		// secure QR present but unreadable without the SDK; OCR result stands
		record.QRFormat = qr.Format
		record.Status = qr.Record.Status
		record.Message = qr.Record.Message
	}
	return record, nil
}

// ExtractDocumentAddress OCRs a cleaned copy of the address proof, written to
// workdir, and normalizes the whole text. An undecodable image yields "".
func (e *Extractor) ExtractDocumentAddress(ctx context.Context, imagePath string, workdir string) (string, error) {
	prepared := filepath.Join(workdir, "address_proof_prepared.png")
	err := e.Preprocessor.PrepareForOCR(ctx, imagePath, prepared)
	if errors.Is(err, imaging.ErrUnreadableImage) {
		logger.Warning("address proof could not be decoded", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		})
		return "", nil
	}
	if err != nil {
		return "", err
	}

	text, err := e.OCR.Recognize(ctx, prepared, ocr_types.RecognizeOptions{PageSegMode: ocr_types.PageSegSingleBlock})
	if err != nil {
		return "", err
	}
	return address.Normalize(text), nil
}
