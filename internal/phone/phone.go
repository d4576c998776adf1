// Package phone normalizes phone numbers into the single canonical
// form stored in campaigns and SIP line mappings: a leading '+'
// followed by the number with spaces and hyphens removed.
package phone

import "strings"

// Normalize strips whitespace and hyphens and ensures a single leading
// '+'. Normalizing an already-normalized number is a no-op.
func Normalize(number string) string {
	number = strings.TrimSpace(number)
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")
	if number == "" {
		return ""
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return number
}

// NormalizeAll normalizes every number in the slice.
func NormalizeAll(numbers []string) []string {
	normalized := make([]string, len(numbers))
	for i, n := range numbers {
		normalized[i] = Normalize(n)
	}
	return normalized
}

// Digits returns the number without its leading '+', used when
// deriving room names and participant identities.
func Digits(number string) string {
	return strings.TrimPrefix(Normalize(number), "+")
}
