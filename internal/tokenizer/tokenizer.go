package tokenizer

import (
	"regexp"
	"strings"
)

// punctRegex matches characters that are neither word characters nor
// whitespace. They are replaced with spaces so "noise-cancelling" splits
// into two tokens and "$100" becomes "100".
var punctRegex = regexp.MustCompile(`[^\w\s]`)

// whitespaceRegex splits the cleaned text into tokens.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Tokenize converts a query string into a slice of lowercase word tokens.
// It lowercases the text, replaces punctuation with spaces, splits on
// whitespace, and drops empty tokens.
func Tokenize(text string) []string {
	lowerText := strings.ToLower(text)
	cleaned := punctRegex.ReplaceAllString(lowerText, " ")
	split := whitespaceRegex.Split(cleaned, -1)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}
