package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"kyc.gateman.io/application/constants"
	"kyc.gateman.io/application/services/address"
	"kyc.gateman.io/application/utils"
	"kyc.gateman.io/entities"
)

// ParseError reports a structured QR payload that is not well-formed markup.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed structured QR payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errNoRootElement = errors.New("no root element")

// Classify reports whether a decoded QR payload is the legacy structured format.
// Anything else is treated as a secure (encrypted) payload.
func Classify(text string) entities.QRFormat {
	if strings.Contains(text, constants.STRUCTURED_QR_SIGNATURE) {
		return entities.QRFormatStructured
	}
	return entities.QRFormatSecure
}

// ParseStructuredQR reads the root element attributes of a legacy QR payload.
func ParseStructuredQR(text string) (*entities.IdentityRecord, error) {
	attrs, err := rootAttributes(text)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	get := func(key string) string { return attrs[key] }
	optional := func(key string) *string {
		if value, ok := attrs[key]; ok {
			return utils.GetStringPointer(value)
		}
		return nil
	}

	rawAddress := strings.Join([]string{
		get("house"), get("street"), get("loc"), get("vtc"), get("dist"), get("state"), get("pc"),
	}, " ")

	dob := optional("dob")
	if dob == nil || *dob == "" {
		dob = optional("yob")
	}

	return &entities.IdentityRecord{
		Type:              entities.AadhaarDocument,
		Source:            entities.StructuredQRSource,
		Name:              optional("name"),
		IDNumber:          optional("uid"),
		Gender:            optional("gender"),
		DateOfBirth:       dob,
		AddressRaw:        strings.TrimSpace(rawAddress),
		AddressNormalized: address.Normalize(rawAddress),
		RawSourceText:     text,
		QRFormat:          entities.QRFormatStructured,
	}, nil
}

// SecureQRRecord is the placeholder returned for encrypted QR payloads, which
// need the issuing authority's SDK to read.
func SecureQRRecord(text string) *entities.IdentityRecord {
	return &entities.IdentityRecord{
		Type:          entities.SecureQRDocument,
		RawSourceText: text,
		QRFormat:      entities.QRFormatSecure,
		Status:        utils.GetStringPointer(constants.SECURE_QR_STATUS),
		Message:       utils.GetStringPointer(constants.SECURE_QR_MESSAGE),
	}
}

// rootAttributes walks the whole document so that trailing garbage or a
// second root is reported as malformed.
func rootAttributes(text string) (map[string]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	// payloads are already UTF-8 by the time they get here
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var attrs map[string]string
	depth := 0
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if depth == 0 {
				if attrs != nil {
					return nil, fmt.Errorf("unexpected second root element <%s>", t.Name.Local)
				}
				attrs = map[string]string{}
				for _, attr := range t.Attr {
					if attr.Name.Space == "" {
						attrs[attr.Name.Local] = attr.Value
					}
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return nil, fmt.Errorf("unexpected text outside the root element")
			}
		}
	}
	if attrs == nil {
		return nil, errNoRootElement
	}
	return attrs, nil
}
