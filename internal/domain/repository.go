package domain

import (
	"fmt"
	"strings"
)

// Repository identifies a GitHub repository.
type Repository struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form.
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether the repository is unset.
func (r Repository) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// ParseRepository parses "owner/name" or a GitHub remote URL such as
// "https://github.com/owner/name.git" or "git@github.com:owner/name.git".
func ParseRepository(s string) (Repository, error) {
	path := strings.TrimSpace(s)
	switch {
	case strings.Contains(path, "://"):
		// scheme://[user@]host/owner/name
		path = path[strings.Index(path, "://")+3:]
		idx := strings.IndexByte(path, '/')
		if idx < 0 {
			return Repository{}, fmt.Errorf("%w: %q", ErrInvalidRepository, s)
		}
		path = path[idx+1:]
	case strings.HasPrefix(path, "git@"):
		// scp-like: git@host:owner/name
		idx := strings.IndexByte(path, ':')
		if idx < 0 {
			return Repository{}, fmt.Errorf("%w: %q", ErrInvalidRepository, s)
		}
		path = path[idx+1:]
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, fmt.Errorf("%w: %q", ErrInvalidRepository, s)
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}
