package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aadhaarFrontText = `Government of India

Asha Verma
DOB: 14/08/1990
Female
1234 5678 9012
`

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
	}{
		{name: "line above DOB", text: aadhaarFrontText, want: strPtr("Asha Verma")},
		{name: "line above bare date", text: "GOVT OF INDIA\nRahul Kumar\n01/01/1985\n", want: strPtr("Rahul Kumar")},
		{name: "blank lines skipped", text: "Header\n\n   \n  Meera Nair  \n\nYear DOB 1990", want: strPtr("Meera Nair")},
		{name: "anchor on first line", text: "DOB 01/01/1990\nSomeone", want: nil},
		{name: "no anchor", text: "Government of India\nAsha Verma\nFemale", want: nil},
		{name: "lowercase dob is not an anchor", text: "Header\nAsha\ndob 1990", want: nil},
		{name: "DOB inside a word is not an anchor", text: "Header\nAsha\nDOBERMAN", want: nil},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractName(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestExtractIDNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
	}{
		{name: "space grouped", text: "1234 5678 9012", want: strPtr("123456789012")},
		{name: "hyphen grouped", text: "1234-5678-9012", want: strPtr("123456789012")},
		{name: "contiguous", text: "123456789012", want: strPtr("123456789012")},
		{name: "inside a document", text: aadhaarFrontText, want: strPtr("123456789012")},
		{name: "too short", text: "1234 5678 901", want: nil},
		{name: "too long", text: "1234 5678 9012 3", want: nil},
		{name: "none", text: "no digits here", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIDNumber(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantRaw        string
		wantNormalized string
	}{
		{
			name:           "labelled block takes four lines",
			text:           "Name\nAddress: S/O Ramesh\nH.No 12, MG Rd\nPune\nMaharashtra 411001\nExtra line",
			wantRaw:        "Address: S/O Ramesh, H.No 12, MG Rd, Pune, Maharashtra 411001",
			wantNormalized: "address s o ramesh h number 12 mg road pune maharashtra 411001",
		},
		{
			name:           "label is case insensitive",
			text:           "ADDRESS\nFlat 3",
			wantRaw:        "ADDRESS, Flat 3",
			wantNormalized: "address flat 3",
		},
		{
			name:           "postal code window",
			text:           "Line one\nLine two\nLine three\nPune 411001\nLine five\nLine six",
			wantRaw:        "Line two, Line three, Pune 411001, Line five",
			wantNormalized: "line two line three pune 411001 line five",
		},
		{
			name:           "postal code on first line",
			text:           "411001 Pune\nnext\nlast",
			wantRaw:        "411001 Pune, next",
			wantNormalized: "411001 pune next",
		},
		{
			name:           "last five lines",
			text:           "one\ntwo\nthree\nfour\nfive\nsix\nseven",
			wantRaw:        "three, four, five, six, seven",
			wantNormalized: "three four five six seven",
		},
		{
			name:           "empty text",
			text:           "",
			wantRaw:        "",
			wantNormalized: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, normalized := ExtractAddress(tt.text)
			assert.Equal(t, tt.wantRaw, raw)
			assert.Equal(t, tt.wantNormalized, normalized)
		})
	}
}

func TestRecordFromOCR(t *testing.T) {
	record := RecordFromOCR(aadhaarFrontText)

	require.True(t, record.HasName())
	assert.Equal(t, "Asha Verma", *record.Name)
	assert.Equal(t, "123456789012", *record.IDNumber)
	assert.Equal(t, aadhaarFrontText, record.RawSourceText)
	assert.Equal(t, "Government of India, Asha Verma, DOB: 14/08/1990, Female, 1234 5678 9012", record.AddressRaw)
}

func strPtr(s string) *string {
	return &s
}
