package conversation

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentity(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	suffix := func() string { return "abcdef12" }
	index := Index{
		Documents:   map[string]bool{"landing-20240101_000000": true},
		Directories: map[string]bool{"landing-20240101_000000": true, "barbearia-20240309_140507": true},
	}

	t.Run("existing document reused", func(t *testing.T) {
		got := ResolveIdentity(IdentityInput{RequestedID: "landing-20240101_000000", Index: index, Now: now, Suffix: suffix, BaseDir: "/data"})
		assert.True(t, got.Existing)
		assert.Equal(t, "landing-20240101_000000", got.ID)
		assert.Equal(t, filepath.Join("/data", "landing-20240101_000000", "landing-20240101_000000.json"), got.Path)
	})

	t.Run("missing document gets new id", func(t *testing.T) {
		got := ResolveIdentity(IdentityInput{RequestedID: "gone", Index: index, TitleSource: "Loja Online", Now: now, Suffix: suffix, BaseDir: "/data"})
		assert.False(t, got.Existing)
		assert.Equal(t, "loja-online-20240309_140507", got.ID)
	})

	t.Run("collision adds suffix", func(t *testing.T) {
		got := ResolveIdentity(IdentityInput{TitleSource: "Barbearia", Index: index, Now: now, Suffix: suffix, BaseDir: "/data"})
		assert.Equal(t, "barbearia-20240309_140507-abcdef12", got.ID)
	})

	t.Run("empty source falls back", func(t *testing.T) {
		got := ResolveIdentity(IdentityInput{TitleSource: "!!!", Now: now, Suffix: suffix})
		assert.Equal(t, "conversation-20240309_140507", got.ID)
	})
}
