package query

import (
	"regexp"
	"strings"
)

// TokenTag phân loại của một token trong free-text query.
type TokenTag string

const (
	TagFSA        TokenTag = "fsa"         // Canadian forward sortation area (A1A)
	TagFullPostal TokenTag = "full_postal" // full Canadian postal code (A1A1A1)
	TagUSZip5     TokenTag = "us_zip5"     // 5-digit US ZIP
	TagUSZip9     TokenTag = "us_zip9"     // ZIP+4 (12345-6789)
	TagNumeric    TokenTag = "numeric"     // signed decimal, candidate coordinate
	TagGeneric    TokenTag = "generic"     // anything else
)

// Syntactic only; no validation against real postal/ZIP ranges.
// The patterns are mutually disjoint, so check order beyond the
// postal-before-generic rule does not matter.
var (
	fsaRe        = regexp.MustCompile(`^[A-Za-z][0-9][A-Za-z]$`)
	fullPostalRe = regexp.MustCompile(`^[A-Za-z][0-9][A-Za-z][0-9][A-Za-z][0-9]$`)
	usZip5Re     = regexp.MustCompile(`^[0-9]{5}$`)
	usZip9Re     = regexp.MustCompile(`^[0-9]{5}-[0-9]{4}$`)
	numericRe    = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
)

// ClassifyToken gán đúng một tag cho token. Postal/ZIP patterns được
// kiểm tra trước numeric, numeric trước generic fallback.
func ClassifyToken(token string) TokenTag {
	cleaned := CleanPostal(token)
	switch {
	case fsaRe.MatchString(cleaned):
		return TagFSA
	case fullPostalRe.MatchString(cleaned):
		return TagFullPostal
	case usZip5Re.MatchString(token):
		return TagUSZip5
	case usZip9Re.MatchString(token):
		return TagUSZip9
	case numericRe.MatchString(token):
		return TagNumeric
	default:
		return TagGeneric
	}
}

// CleanPostal upper-cases và bỏ spaces để so sánh postal code.
func CleanPostal(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}
