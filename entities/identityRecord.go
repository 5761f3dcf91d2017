package entities

type DocumentType string

const (
	AadhaarDocument  DocumentType = "aadhaar"
	SecureQRDocument DocumentType = "secure_qr"
)

// IdentitySource records which extractor produced an IdentityRecord.
type IdentitySource string

const (
	StructuredQRSource IdentitySource = "structured_qr"
	OCRSource          IdentitySource = "ocr"
)

// QRFormat classifies the first machine-readable code found on a document.
type QRFormat string

const (
	QRFormatNone       QRFormat = ""
	QRFormatStructured QRFormat = "structured"
	QRFormatSecure     QRFormat = "secure"
)

// IdentityRecord is the identity data recovered from the front of an ID document.
// AddressNormalized is always derived from AddressRaw.
type IdentityRecord struct {
	Type              DocumentType   `json:"type"`
	Source            IdentitySource `json:"source"`
	Name              *string        `json:"name"`
	IDNumber          *string        `json:"id_number"`
	Gender            *string        `json:"gender"`
	DateOfBirth       *string        `json:"date_of_birth"`
	AddressRaw        string         `json:"address_raw"`
	AddressNormalized string         `json:"address"`
	RawSourceText     string         `json:"raw_text"`
	QRFormat          QRFormat       `json:"qr_format,omitempty"`

	// set only when a secure QR was found but cannot be decoded locally
	Status  *string `json:"status,omitempty"`
	Message *string `json:"message,omitempty"`
}

// HasName reports whether the record carries a usable, non-blank name.
func (record *IdentityRecord) HasName() bool {
	return record != nil && record.Name != nil && *record.Name != ""
}

// MaskedIDNumber keeps only the last four digits of the ID number for logging.
func (record *IdentityRecord) MaskedIDNumber() string {
	if record == nil || record.IDNumber == nil {
		return "NOT_FOUND"
	}
	id := *record.IDNumber
	if len(id) <= 4 {
		return id
	}
	masked := make([]byte, len(id))
	for i := range masked {
		if i < len(id)-4 {
			masked[i] = 'X'
		} else {
			masked[i] = id[i]
		}
	}
	return string(masked)
}
