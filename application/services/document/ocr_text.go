package document

import (
	"regexp"
	"strings"

	"kyc.gateman.io/application/services/address"
	"kyc.gateman.io/entities"
)

var (
	lineBreak       = regexp.MustCompile(`\r\n|[\n\r\v\f\x1c\x1d\x1e\x{85}\x{2028}\x{2029}]`)
	nameAnchor      = regexp.MustCompile(`\bDOB\b|\d{2}/\d{2}/\d{4}`)
	idNumberPattern = regexp.MustCompile(`\b\d{12}\b`)
	addressLabel    = regexp.MustCompile(`(?i)address\s*[:\-]?`)
	postalCode      = regexp.MustCompile(`\b\d{6}\b`)
	idSeparators    = strings.NewReplacer(" ", "", "-", "")
)

// Lines splits OCR output into trimmed, non-empty lines.
func Lines(text string) []string {
	lines := []string{}
	for _, line := range lineBreak.Split(text, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ExtractName returns the line right above the first date-of-birth line. A
// DOB anchor on the first line gives no name.
func ExtractName(text string) *string {
	lines := Lines(text)
	for i, line := range lines {
		if i > 0 && nameAnchor.MatchString(line) {
			name := lines[i-1]
			return &name
		}
	}
	return nil
}

// ExtractIDNumber finds the first standalone 12 digit run once spaces and
// hyphens are removed, so "1234 5678 9012" and "1234-5678-9012" both match.
func ExtractIDNumber(text string) *string {
	match := idNumberPattern.FindString(idSeparators.Replace(text))
	if match == "" {
		return nil
	}
	return &match
}

// ExtractAddress picks the address block from OCR text: the labelled line and
// the three after it, else the postal code line with two lines before and one
// after, else the last five lines. It returns the raw joined block and its
// normalized form.
func ExtractAddress(text string) (raw string, normalized string) {
	lines := Lines(text)
	block := addressBlock(lines)
	raw = strings.TrimSpace(strings.Join(block, ", "))
	return raw, address.Normalize(raw)
}

func addressBlock(lines []string) []string {
	for i, line := range lines {
		if addressLabel.MatchString(line) {
			return lines[i:min(i+4, len(lines))]
		}
	}
	for i, line := range lines {
		if postalCode.MatchString(line) {
			return lines[max(0, i-2):min(i+2, len(lines))]
		}
	}
	return lines[max(0, len(lines)-5):]
}

// RecordFromOCR builds an identity record from raw OCR text.
func RecordFromOCR(text string) *entities.IdentityRecord {
	raw, normalized := ExtractAddress(text)
	return &entities.IdentityRecord{
		Type:              entities.AadhaarDocument,
		Source:            entities.OCRSource,
		Name:              ExtractName(text),
		IDNumber:          ExtractIDNumber(text),
		AddressRaw:        raw,
		AddressNormalized: normalized,
		RawSourceText:     text,
	}
}
