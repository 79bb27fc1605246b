// Package gitops versions the data directory with git.
package gitops

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Author identifies the commit author and committer.
type Author struct {
	Name  string
	Email string
}

func (a Author) env() []string {
	return append(os.Environ(),
		"GIT_AUTHOR_NAME="+a.Name,
		"GIT_AUTHOR_EMAIL="+a.Email,
		"GIT_COMMITTER_NAME="+a.Name,
		"GIT_COMMITTER_EMAIL="+a.Email,
	)
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init initializes a new git repository at dir. An existing repository is
// left as is.
func Init(dir string) error {
	if IsRepo(dir) {
		return nil
	}
	if _, err := run(dir, nil, "init", "--quiet"); err != nil {
		return err
	}
	return nil
}

// Commit stages paths (relative to dir) and commits them. It returns the
// short hash, or "" when nothing changed.
func Commit(dir string, author Author, message string, paths ...string) (string, error) {
	args := append([]string{"add", "--"}, paths...)
	if _, err := run(dir, nil, args...); err != nil {
		return "", err
	}

	if _, err := run(dir, nil, "diff", "--cached", "--quiet"); err == nil {
		return "", nil
	}

	if _, err := run(dir, author.env(), "commit", "--quiet", "-m", message); err != nil {
		return "", err
	}

	out, err := run(dir, nil, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func run(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = env
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(out.String()), err)
	}
	return out.String(), nil
}
