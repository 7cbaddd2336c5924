package domain

import "strings" // Whitespace trimming

// DisplayName joins first and last name with a single space and trims the result
func DisplayName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
