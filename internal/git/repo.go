// Package git wraps the git CLI for the repository under review.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Repo is a handle to a local git repository and the remote it syncs with.
type Repo struct {
	Dir    string
	Remote string
}

// New returns a Repo rooted at dir that talks to the given remote.
func New(dir, remote string) *Repo {
	return &Repo{Dir: dir, Remote: remote}
}

// CheckGitAvailable returns an error if the git CLI is not on PATH.
func CheckGitAvailable() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return fmt.Errorf("git CLI not available: %w", err)
	}
	return nil
}

// Root returns the root directory of the repository containing dir.
// An empty dir means the current working directory.
func Root(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// output runs a git query in the repository and returns trimmed stdout.
func (r *Repo) output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		return "", wrapGitError(args, err, exitStderr(err))
	}
	return strings.TrimSpace(string(out)), nil
}

// mutate runs a git command that changes repository state.
func (r *Repo) mutate(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return wrapGitError(args, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func wrapGitError(args []string, err error, detail string) error {
	if detail != "" {
		return fmt.Errorf("git %s failed (%s): %w", args[0], detail, err)
	}
	return fmt.Errorf("git %s failed: %w", args[0], err)
}

// exitStderr extracts trimmed stderr from an exec.ExitError, if any.
func exitStderr(err error) string {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return ""
}

// RemoteURL returns the configured URL of the repository's remote.
func (r *Repo) RemoteURL(ctx context.Context) (string, error) {
	url, err := r.output(ctx, "remote", "get-url", r.Remote)
	if err != nil {
		return "", fmt.Errorf("failed to read URL of remote '%s': %w", r.Remote, err)
	}
	return url, nil
}

// CurrentBranch returns the name of the currently checked-out branch.
// The result is empty when HEAD is detached.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return r.output(ctx, "branch", "--show-current")
}
