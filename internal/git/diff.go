package git

import (
	"context"
	"fmt"
	"strings"
)

// diffContextLines is the unified-diff context requested for review prompts.
// Wider than git's default so the reviewer sees surrounding code.
const diffContextLines = 10

// Diff returns the unified diff between base and head using three-dot
// semantics: changes reachable from head but not from its merge base with
// base.
func (r *Repo) Diff(ctx context.Context, base, head string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("base ref cannot be empty")
	}
	if strings.HasPrefix(base, "-") || strings.HasPrefix(head, "-") {
		return "", fmt.Errorf("refs must not start with -")
	}
	out, err := r.output(ctx, "diff", fmt.Sprintf("-U%d", diffContextLines), base+"..."+head)
	if err != nil {
		return "", err
	}
	return out, nil
}

// ChangedFiles returns the paths changed between base and head, in git's
// natural output order, using the same three-dot semantics as Diff.
func (r *Repo) ChangedFiles(ctx context.Context, base, head string) ([]string, error) {
	if base == "" {
		return nil, fmt.Errorf("base ref cannot be empty")
	}
	if strings.HasPrefix(base, "-") || strings.HasPrefix(head, "-") {
		return nil, fmt.Errorf("refs must not start with -")
	}
	// -z keeps non-ASCII paths literal instead of C-quoted, so the paths
	// can be fed back to cat-file/show as-is.
	out, err := r.output(ctx, "diff", "--name-only", "-z", base+"..."+head)
	if err != nil {
		return nil, err
	}
	out = strings.TrimRight(out, "\x00")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\x00"), nil
}
