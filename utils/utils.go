package utils

import (
	"strings"
)

// NormalizeAnswer lowercases and trims an option string so answer checks and
// import dedupe are insensitive to whitespace and case.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// NormalizeQuestionKey builds the dedupe key used when importing catalog
// entries.
func NormalizeQuestionKey(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}
