package importer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler turns a property name such as "firstName" or "first_name"
// into "First Name".
func DefaultLabeler(name string) string {
	var segments []string
	for _, word := range splitWordsPattern.Split(name, -1) {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitCamel(input string) string {
	var out strings.Builder
	var prev rune
	for i, r := range input {
		if i > 0 && ((unicode.IsLower(prev) && unicode.IsUpper(r)) || (unicode.IsLetter(prev) && unicode.IsDigit(r))) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
		prev = r
	}
	return out.String()
}

func titleCase(phrase string) string {
	words := strings.Fields(phrase)
	for i, word := range words {
		lower := strings.ToLower(word)
		first, size := utf8.DecodeRuneInString(lower)
		words[i] = string(unicode.ToUpper(first)) + lower[size:]
	}
	return strings.Join(words, " ")
}
