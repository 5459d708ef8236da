package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSanitizer_UnknownLevelFallsBackToHashed(t *testing.T) {
	assert.Equal(t, PIILevelHashed, NewSanitizer("verbose", "salt").Level())
	assert.Equal(t, PIILevelFull, NewSanitizer(PIILevelFull, "salt").Level())
}

func TestSanitize_None(t *testing.T) {
	s := NewSanitizer(PIILevelNone, "site-agent")
	assert.Equal(t, "[REDACTED]", s.Sanitize("contato: ana@example.com"))
}

func TestSanitize_FullOnlyMasksSecrets(t *testing.T) {
	s := NewSanitizer(PIILevelFull, "site-agent")

	out := s.Sanitize("key sk-abcdefghijklmnop for ana@example.com")
	assert.NotContains(t, out, "sk-abcdefghijklmnop")
	assert.Contains(t, out, "[SECRET:REDACTED]")
	assert.Contains(t, out, "ana@example.com")
}

func TestSanitize_Hashed(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "site-agent")

	tests := []struct {
		name    string
		input   string
		leak    string
		marker  string
		keepsIn string
	}{
		{"email", "Escreva para ana.souza@example.com hoje", "ana.souza@example.com", "[EMAIL:", "hoje"},
		{"phone", "WhatsApp (11) 98765-4321 para reservas", "98765-4321", "[PHONE:", "para reservas"},
		{"card", "cartão 4111 1111 1111 1111", "4111 1111", "[CC:REDACTED]", "cartão"},
		{"ip", "servidor 192.168.0.10", "192.168.0.10", "[IP:", "servidor"},
		{"bearer", "Authorization: Bearer abc.def.ghi", "abc.def.ghi", "[SECRET:REDACTED]", "Authorization"},
		{"hf token", "token hf_ABCDEFGHIJKLMNOP", "hf_ABCDEFGHIJKLMNOP", "[SECRET:REDACTED]", "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Sanitize(tt.input)
			assert.NotContains(t, out, tt.leak)
			assert.Contains(t, out, tt.marker)
			assert.Contains(t, out, tt.keepsIn)
		})
	}
}

func TestSanitize_HashIsStablePerSalt(t *testing.T) {
	a := NewSanitizer(PIILevelHashed, "one")
	b := NewSanitizer(PIILevelHashed, "two")

	assert.Equal(t, a.Sanitize("x@example.com"), a.Sanitize("x@example.com"))
	assert.NotEqual(t, a.Sanitize("x@example.com"), b.Sanitize("x@example.com"))
}

func TestPreview_Truncates(t *testing.T) {
	s := NewSanitizer(PIILevelFull, "")

	out := s.Preview("  "+strings.Repeat("á", 30)+"  ", 10)
	assert.Equal(t, strings.Repeat("á", 10)+"...", out)
	assert.Equal(t, "curto", s.Preview("curto", 10))
}
