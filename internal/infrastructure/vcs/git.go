// Package vcs snapshots a generated project directory into a git repository.
package vcs

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/infrastructure/metrics"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// GitSnapshotter commits the full state of a directory.
type GitSnapshotter struct {
	authorName  string
	authorEmail string
	now         func() time.Time
	log         zerolog.Logger
}

// NewGitSnapshotter builds a snapshotter that signs commits with the configured author.
func NewGitSnapshotter(cfg *config.Config, log zerolog.Logger) *GitSnapshotter {
	return &GitSnapshotter{
		authorName:  cfg.GitAuthorName,
		authorEmail: cfg.GitAuthorEmail,
		now:         time.Now,
		log:         log.With().Str("component", "git-snapshotter").Logger(),
	}
}

// CommitAll opens (or initializes) the repository at dir, stages everything
// including untracked files and deletions, and commits when the repository has
// no HEAD yet or the index differs from HEAD. Otherwise it returns the HEAD hash.
func (g *GitSnapshotter) CommitAll(ctx context.Context, dir, message string) (string, error) {
	hash, err := g.commitAll(ctx, dir, message)
	metrics.RecordCommit(metrics.StatusLabel(err))
	if err != nil {
		return "", platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeInternal,
			"failed to commit generated project", err, "git-commit-001", map[string]any{"dir": dir})
	}
	return hash, nil
}

func (g *GitSnapshotter) commitAll(ctx context.Context, dir, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := g.openOrInit(dir)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	if err := stageAll(worktree); err != nil {
		return "", err
	}

	head, err := repo.Head()
	hasHead := err == nil
	if err != nil && !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", err
	}

	if hasHead {
		dirty, err := indexDiffersFromHead(worktree)
		if err != nil {
			return "", err
		}
		if !dirty {
			g.log.Debug().Str("dir", dir).Str("hash", head.Hash().String()).Msg("nothing to commit")
			return head.Hash().String(), nil
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	commit, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  g.authorName,
			Email: g.authorEmail,
			When:  g.now(),
		},
		AllowEmptyCommits: !hasHead,
	})
	if err != nil {
		return "", err
	}

	g.log.Info().Str("dir", dir).Str("hash", commit.String()).Msg("project committed")
	return commit.String(), nil
}

func (g *GitSnapshotter) openOrInit(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpen(dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	g.log.Debug().Str("dir", dir).Msg("initializing repository")
	return git.PlainInit(dir, false)
}

func stageAll(worktree *git.Worktree) error {
	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return err
	}

	status, err := worktree.Status()
	if err != nil {
		return err
	}
	for path, file := range status {
		if file.Worktree == git.Deleted {
			if _, err := worktree.Remove(path); err != nil {
				return err
			}
		}
	}
	return nil
}

func indexDiffersFromHead(worktree *git.Worktree) (bool, error) {
	status, err := worktree.Status()
	if err != nil {
		return false, err
	}
	for _, file := range status {
		if file.Staging != git.Unmodified && file.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}
