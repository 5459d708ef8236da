package observability

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// PIILevel controls how much prompt and response text reaches logs and spans.
type PIILevel string

const (
	// PIILevelNone drops the text entirely
	PIILevelNone PIILevel = "none"
	// PIILevelHashed keeps the text but replaces personal data with salted hashes
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull keeps the text, only credentials are masked
	PIILevelFull PIILevel = "full"
)

type piiPattern struct {
	label  string
	re     *regexp.Regexp
	hashed bool
}

var (
	secretPatterns = []piiPattern{
		{label: "SECRET", re: regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/-]+=*`)},
		{label: "SECRET", re: regexp.MustCompile(`\b(?:sk|hf)[-_][A-Za-z0-9_-]{8,}\b`)},
	}
	personalPatterns = []piiPattern{
		{label: "EMAIL", re: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`), hashed: true},
		{label: "CC", re: regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
		{label: "PHONE", re: regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?\(?\b\d{2,3}\)?[\s.-]?\d{4,5}[\s.-]?\d{4}\b`), hashed: true},
		{label: "IP", re: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), hashed: true},
	}
)

// Sanitizer masks personal data and credentials in model traffic before it is
// logged or attached to a span.
type Sanitizer struct {
	level PIILevel
	salt  string
}

// NewSanitizer creates a sanitizer. Unknown levels behave like PIILevelHashed.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	switch level {
	case PIILevelNone, PIILevelHashed, PIILevelFull:
	default:
		level = PIILevelHashed
	}
	return &Sanitizer{level: level, salt: salt}
}

// Level returns the effective level.
func (s *Sanitizer) Level() PIILevel {
	return s.level
}

// Sanitize applies the configured level to text.
func (s *Sanitizer) Sanitize(text string) string {
	if s.level == PIILevelNone {
		return "[REDACTED]"
	}

	out := s.replace(text, secretPatterns)
	if s.level == PIILevelHashed {
		out = s.replace(out, personalPatterns)
	}
	return out
}

// Preview sanitizes text and keeps at most limit runes of it.
func (s *Sanitizer) Preview(text string, limit int) string {
	out := s.Sanitize(strings.TrimSpace(text))
	runes := []rune(out)
	if limit > 0 && len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return out
}

func (s *Sanitizer) replace(text string, patterns []piiPattern) string {
	for _, p := range patterns {
		text = p.re.ReplaceAllStringFunc(text, func(match string) string {
			if p.hashed {
				return fmt.Sprintf("[%s:%s]", p.label, s.hash(match))
			}
			return fmt.Sprintf("[%s:REDACTED]", p.label)
		})
	}
	return text
}

// hash returns the first 8 hex chars of a salted SHA-256.
func (s *Sanitizer) hash(data string) string {
	sum := sha256.Sum256([]byte(data + s.salt))
	return hex.EncodeToString(sum[:])[:8]
}
