// Package gitrepo provides the git integration for release runs: worktree
// cleanliness checks, the release commit, the annotated version tag, and
// the optional push. It uses the go-git library so no git CLI installation
// is required.
package gitrepo

import (
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// fallbackSignature is used when the repository config carries no user
// identity.
const (
	fallbackName  = "shiplog"
	fallbackEmail = "shiplog@localhost"
)

// Open opens the git repository containing path, traversing up the
// directory tree to find the repository root.
func Open(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsClean reports whether the worktree has no uncommitted changes.
func IsClean(repo *git.Repository) (bool, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting worktree status: %w", err)
	}
	return status.IsClean(), nil
}

// CommitFiles stages the given repository-relative files and records them
// as a single commit. Returns the new commit hash.
func CommitFiles(repo *git.Repository, files []string, message string) (plumbing.Hash, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting worktree: %w", err)
	}

	for _, file := range files {
		if _, err := wt.Add(file); err != nil {
			return plumbing.ZeroHash, fmt.Errorf("staging %s: %w", file, err)
		}
	}

	hash, err := wt.Commit(message, &git.CommitOptions{Author: signature(repo)})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("committing: %w", err)
	}
	return hash, nil
}

// CreateTag creates an annotated tag pointing at the given commit.
func CreateTag(repo *git.Repository, name string, target plumbing.Hash, message string) error {
	_, err := repo.CreateTag(name, target, &git.CreateTagOptions{
		Tagger:  signature(repo),
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}
	return nil
}

// Push publishes the current branch and the given tag to the remote.
func Push(repo *git.Repository, remote, tag string) error {
	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD reference: %w", err)
	}

	refspecs := []config.RefSpec{
		config.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name())),
		config.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", tag, tag)),
	}

	err = repo.Push(&git.PushOptions{RemoteName: remote, RefSpecs: refspecs})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("pushing to %s: %w", remote, err)
	}
	return nil
}

// signature builds the commit signature from the repository configuration,
// falling back to the shiplog identity.
func signature(repo *git.Repository) *object.Signature {
	name, email := fallbackName, fallbackEmail
	if cfg, err := repo.ConfigScoped(config.GlobalScope); err == nil {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}
	return &object.Signature{Name: name, Email: email, When: time.Now()}
}
