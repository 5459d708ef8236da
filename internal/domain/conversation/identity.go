package conversation

import (
	"path/filepath"
	"time"

	"github.com/janhq/site-agent/internal/utils/stringutils"
)

const (
	idTimeLayout = "20060102_150405"
	idFallback   = "conversation"
)

// IdentityInput is everything needed to decide which document a turn belongs to.
type IdentityInput struct {
	RequestedID string
	Index       Index
	TitleSource string
	Now         time.Time
	Suffix      func() string
	BaseDir     string
}

// Identity is the resolved id and document path. Existing is true when the
// requested id already has a document.
type Identity struct {
	ID       string
	Path     string
	Existing bool
}

// ResolveIdentity reuses RequestedID when its document exists and otherwise mints
// {slug}-{yyyymmdd_HHMMSS}, adding a random suffix if that directory is taken.
// It touches no filesystem state.
func ResolveIdentity(in IdentityInput) Identity {
	if in.RequestedID != "" && in.Index.Documents[in.RequestedID] {
		return Identity{
			ID:       in.RequestedID,
			Path:     documentPath(in.BaseDir, in.RequestedID),
			Existing: true,
		}
	}

	id := stringutils.Slugify(in.TitleSource, idFallback) + "-" + in.Now.Format(idTimeLayout)
	if in.Index.Directories[id] && in.Suffix != nil {
		id += "-" + in.Suffix()
	}
	return Identity{
		ID:   id,
		Path: documentPath(in.BaseDir, id),
	}
}

func documentPath(baseDir, id string) string {
	return filepath.Join(baseDir, id, id+".json")
}

func dirOf(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}
