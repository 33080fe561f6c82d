package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// minTokenRunes is the shortest token kept by Tokenize.
const minTokenRunes = 2

// Tokenize splits text into case-folded tokens, filtering short tokens.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	// Casers carry state, so each call gets its own.
	folded := cases.Fold().String(norm.NFKC.String(text))
	raw := strings.FieldsFunc(folded, isTokenSeparator)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if utf8.RuneCountInString(token) < minTokenRunes {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

func isTokenSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r) && r != '_'
}
