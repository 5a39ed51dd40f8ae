// Package git provides read-only access to the working git repository.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// Ensure Client implements domain.RemoteResolver.
var _ domain.RemoteResolver = (*Client)(nil)

// Client provides git operations.
type Client struct {
	repo     *gogit.Repository
	repoRoot string // Root of the working tree
}

// NewClient opens the repository containing dir, searching parent directories.
// Returns domain.ErrNotGitRepository when dir is not inside a repository.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree.
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	return &Client{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// RemoteURL returns the first URL configured for the named remote.
func (c *Client) RemoteURL(name string) (string, error) {
	remote, err := c.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, name)
		}
		return "", fmt.Errorf("read remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s has no URL", domain.ErrRemoteNotFound, name)
	}
	return urls[0], nil
}
