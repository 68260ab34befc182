package git

import (
	"context"
	"fmt"
)

// Fetch fetches a branch from the repository's remote.
func (r *Repo) Fetch(ctx context.Context, branch string) error {
	if err := r.mutate(ctx, "fetch", r.Remote, branch); err != nil {
		return fmt.Errorf("failed to fetch '%s' from '%s': %w", branch, r.Remote, err)
	}
	return nil
}

// FetchPRHead fetches the head ref of a pull request into FETCH_HEAD.
func (r *Repo) FetchPRHead(ctx context.Context, number int) error {
	refSpec := fmt.Sprintf("pull/%d/head", number)
	if err := r.mutate(ctx, "fetch", r.Remote, refSpec); err != nil {
		return fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}
	return nil
}

// FetchPRHeadInto fetches the head ref of a pull request into a local
// branch, overwriting the branch if it already exists. The branch must not
// be checked out.
func (r *Repo) FetchPRHeadInto(ctx context.Context, number int, branch string) error {
	refSpec := fmt.Sprintf("+pull/%d/head:refs/heads/%s", number, branch)
	if err := r.mutate(ctx, "fetch", r.Remote, refSpec); err != nil {
		return fmt.Errorf("failed to fetch PR #%d into branch '%s': %w", number, branch, err)
	}
	return nil
}

// Checkout switches the working tree to the given branch.
func (r *Repo) Checkout(ctx context.Context, branch string) error {
	if err := r.mutate(ctx, "checkout", branch); err != nil {
		return fmt.Errorf("failed to checkout '%s': %w", branch, err)
	}
	return nil
}

// ResetHard force-resets the current branch and working tree to ref,
// discarding any local divergence.
func (r *Repo) ResetHard(ctx context.Context, ref string) error {
	if err := r.mutate(ctx, "reset", "--hard", ref); err != nil {
		return fmt.Errorf("failed to reset to '%s': %w", ref, err)
	}
	return nil
}
