package sanitize

import "strings"

// DefaultMaxLength bounds short free-text inputs such as search terms
const DefaultMaxLength = 100

var stripper = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "`", "")

// Input removes markup-significant characters, trims surrounding space and
// truncates to maxLength runes. A non-positive maxLength means DefaultMaxLength.
func Input(value string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	cleaned := strings.TrimSpace(stripper.Replace(value))
	runes := []rune(cleaned)
	if len(runes) > maxLength {
		return string(runes[:maxLength])
	}
	return cleaned
}
