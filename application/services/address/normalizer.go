package address

import (
	"regexp"
	"strings"
)

var abbreviations = map[string]string{
	"rd":  "road",
	"st":  "street",
	"ngr": "nagar",
	"apt": "apartment",
	"fl":  "floor",
	"hno": "house",
	"no":  "number",
}

var (
	nonAlphanumeric  = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	abbreviationWord = regexp.MustCompile(`\b(rd|st|ngr|apt|fl|hno|no)\b`)
)

// Normalize canonicalises a free-text address: lowercase, alphanumerics only,
// single spaces, abbreviations expanded on whole words. Empty input yields "".
//
// Punctuation is stripped before expansion so "st." and "st" expand alike and
// a second pass never finds a new abbreviation.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonAlphanumeric.ReplaceAllString(text, " ")
	text = abbreviationWord.ReplaceAllStringFunc(text, func(word string) string {
		return abbreviations[word]
	})
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
