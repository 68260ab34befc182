package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// BlobExists reports whether path exists in the tree at ref.
func (r *Repo) BlobExists(ctx context.Context, ref, path string) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "cat-file", "-e", ref+":"+path)
	cmd.Dir = r.Dir
	if err := cmd.Run(); err != nil {
		// cat-file -e exits non-zero when the object does not exist,
		// which also covers paths introduced by the change itself.
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("git cat-file failed for '%s:%s': %w", ref, path, err)
	}
	return true, nil
}

// BlobSize returns the byte size of the blob at ref:path.
func (r *Repo) BlobSize(ctx context.Context, ref, path string) (int64, error) {
	out, err := r.output(ctx, "cat-file", "-s", ref+":"+path)
	if err != nil {
		return 0, fmt.Errorf("failed to read size of '%s:%s': %w", ref, path, err)
	}
	size, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected cat-file -s output %q for '%s:%s': %w", out, ref, path, err)
	}
	return size, nil
}

// BlobContent returns the content of the blob at ref:path.
func (r *Repo) BlobContent(ctx context.Context, ref, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "show", ref+":"+path)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		return "", wrapGitError([]string{"show"}, err, exitStderr(err))
	}
	return string(out), nil
}
