package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/richhaase/pr-prompt/internal/clipboard"
	"github.com/richhaase/pr-prompt/internal/config"
	"github.com/richhaase/pr-prompt/internal/domain"
	"github.com/richhaase/pr-prompt/internal/git"
	"github.com/richhaase/pr-prompt/internal/github"
	"github.com/richhaase/pr-prompt/internal/prompt"
	"github.com/richhaase/pr-prompt/internal/terminal"
)

// execute runs the whole pipeline: validate, resolve identity, fetch
// metadata, sync branches, diff, snapshot, assemble, copy. Every failure is
// fatal to the run.
func execute(ctx context.Context, prArg string, clip clipboard.Writer, logger *terminal.Logger) domain.ExitCode {
	number, err := parsePRNumber(prArg)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return domain.ExitError
	}

	if err := git.CheckGitAvailable(); err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return domain.ExitError
	}

	root, err := git.Root(ctx, "")
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return failCode(ctx)
	}

	if err := config.LoadDotEnv(root); err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return domain.ExitError
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		logger.Log("GITHUB_TOKEN is not set", terminal.StyleError)
		return domain.ExitError
	}

	result, err := config.Load(root)
	if err != nil {
		logger.Logf(terminal.StyleError, "Config error: %v", err)
		return domain.ExitError
	}
	for _, warning := range result.Warnings {
		logger.Logf(terminal.StyleWarning, "Warning: %s", warning)
	}
	resolved := config.Resolve(result.Config, config.LoadEnvState())

	repo := git.New(root, resolved.Remote)

	remoteURL, err := repo.RemoteURL(ctx)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return failCode(ctx)
	}
	owner, name, err := github.ParseOwnerRepo(remoteURL)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return domain.ExitError
	}
	logger.Logf(terminal.StyleDim, "Repository: %s/%s", owner, name)

	client, err := github.NewClient(token, resolved.APIURL)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return domain.ExitError
	}

	logger.Logf(terminal.StyleInfo, "Fetching PR %s#%d%s",
		terminal.Color(terminal.Bold), number, terminal.Color(terminal.Reset))
	info, err := client.FetchPullRequest(ctx, owner, name, number)
	if err != nil {
		switch {
		case errors.Is(err, github.ErrNotFound):
			logger.Logf(terminal.StyleError, "PR #%d not found in %s/%s", number, owner, name)
		case errors.Is(err, github.ErrAuth):
			logger.Log("GitHub authentication failed. Check GITHUB_TOKEN.", terminal.StyleError)
		default:
			logger.Logf(terminal.StyleError, "Failed to fetch PR info: %v", err)
		}
		return failCode(ctx)
	}
	logger.Logf(terminal.StyleSuccess, "PR #%d: %s %s(%s -> %s)%s",
		number, info.Title,
		terminal.Color(terminal.Dim), info.SourceBranch, info.TargetBranch, terminal.Color(terminal.Reset))

	if code := syncBranches(ctx, repo, info, logger); code != domain.ExitOK {
		return code
	}

	baseRef := resolved.Remote + "/" + info.TargetBranch

	diff, err := repo.Diff(ctx, baseRef, info.SourceBranch)
	if err != nil {
		logger.Logf(terminal.StyleError, "Failed to get diff: %v", err)
		return failCode(ctx)
	}

	// Spool the diff to a temp file; removed on every exit path from here.
	diffPath, err := spoolDiff(diff)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return domain.ExitError
	}
	defer os.Remove(diffPath)

	files, err := repo.ChangedFiles(ctx, baseRef, info.SourceBranch)
	if err != nil {
		logger.Logf(terminal.StyleError, "Failed to list changed files: %v", err)
		return failCode(ctx)
	}
	logger.Logf(terminal.StyleDim, "%d changed file(s)", len(files))

	snapshots, err := prompt.CollectSnapshots(ctx, repo, baseRef, files)
	if err != nil {
		logger.Logf(terminal.StyleError, "Failed to read original files: %v", err)
		return failCode(ctx)
	}

	instructions := prompt.DefaultInstructions
	if resolved.InstructionsFile != "" {
		data, err := os.ReadFile(resolved.InstructionsFile)
		if err != nil {
			logger.Logf(terminal.StyleError, "Failed to read instructions file: %v", err)
			return domain.ExitError
		}
		instructions = string(data)
	}

	diffText, err := os.ReadFile(diffPath)
	if err != nil {
		logger.Logf(terminal.StyleError, "Failed to read diff file: %v", err)
		return domain.ExitError
	}

	doc := prompt.Build(info, files, snapshots, string(diffText), instructions)
	if err := clip.Write(doc); err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return domain.ExitError
	}

	logger.Logf(terminal.StyleSuccess, "Copied %d bytes to clipboard", len(doc))
	fmt.Printf("Review prompt for PR #%d copied to clipboard.\n", number)
	return domain.ExitOK
}

// syncBranches brings the local repository to the PR head. The target
// branch is always fetched first since the diff and snapshots compare
// against it.
func syncBranches(ctx context.Context, repo *git.Repo, info domain.PullRequestInfo, logger *terminal.Logger) domain.ExitCode {
	if err := repo.Fetch(ctx, info.TargetBranch); err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return failCode(ctx)
	}

	current, err := repo.CurrentBranch(ctx)
	if err != nil {
		logger.Logf(terminal.StyleError, "%v", err)
		return failCode(ctx)
	}

	if current == info.SourceBranch {
		// Already on the source branch: force it back to the PR head,
		// discarding any local divergence.
		if err := repo.FetchPRHead(ctx, info.Number); err != nil {
			logger.Logf(terminal.StyleError, "%v", err)
			return failCode(ctx)
		}
		if err := repo.ResetHard(ctx, "FETCH_HEAD"); err != nil {
			logger.Logf(terminal.StyleError, "%v", err)
			return failCode(ctx)
		}
		logger.Logf(terminal.StyleInfo, "Reset %s to the PR head", info.SourceBranch)
	} else {
		if err := repo.FetchPRHeadInto(ctx, info.Number, info.SourceBranch); err != nil {
			logger.Logf(terminal.StyleError, "%v", err)
			return failCode(ctx)
		}
		if err := repo.Checkout(ctx, info.SourceBranch); err != nil {
			logger.Logf(terminal.StyleError, "%v", err)
			return failCode(ctx)
		}
		logger.Logf(terminal.StyleInfo, "Checked out %s", info.SourceBranch)
	}

	return domain.ExitOK
}

// spoolDiff writes the diff to a unique temp file and returns its path.
func spoolDiff(diff string) (string, error) {
	f, err := os.CreateTemp("", "prp-diff-*.patch")
	if err != nil {
		return "", fmt.Errorf("failed to create diff file: %w", err)
	}
	if _, err := f.WriteString(diff); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write diff file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close diff file: %w", err)
	}
	return f.Name(), nil
}

// failCode distinguishes operator interruption from ordinary failure.
func failCode(ctx context.Context) domain.ExitCode {
	if ctx.Err() != nil {
		return domain.ExitInterrupted
	}
	return domain.ExitError
}
