package stringutils

import (
	"strings"
	"unicode"
)

const (
	titleMaxWords = 12
	titleMaxRunes = 80
	titleEllipsis = "..."
)

// FormatTitle turns free text into a short title: first line, text before the
// first period, at most 12 words (with an ellipsis when cut), at most 80 runes,
// first letter upper-cased and the rest lower-cased. Returns "" when nothing remains.
func FormatTitle(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	firstLine, _, _ := strings.Cut(trimmed, "\n")
	firstLine = strings.TrimSuffix(firstLine, "\r")
	firstSentence, _, _ := strings.Cut(firstLine, ".")

	words := strings.Fields(firstSentence)
	summary := strings.Join(words[:min(len(words), titleMaxWords)], " ")
	if len(words) > titleMaxWords {
		summary += titleEllipsis
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return ""
	}

	runes := []rune(summary)
	if len(runes) > titleMaxRunes {
		runes = runes[:titleMaxRunes]
	}
	return capitalize(runes)
}

func capitalize(runes []rune) string {
	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
