package prompt

import (
	"fmt"
	"strings"

	"github.com/richhaase/pr-prompt/internal/domain"
)

// DefaultInstructions is the reviewer guidance embedded in every prompt
// unless an instructions file overrides it.
const DefaultInstructions = `You are reviewing a pull request. Read the description, the original
files, and the diff below, then provide a code review. Focus on:

- Bugs, logic errors, and unhandled edge cases introduced by the change
- Security issues (injection, credential handling, unsafe input)
- Breaking changes to existing behavior that the description does not mention
- Significant readability or maintainability problems

Do not comment on style preferences or formatting. For each issue, name the
file and the relevant lines, explain the problem, and suggest a fix. If the
change looks good, say so briefly.`

// Build concatenates the document in fixed section order: title,
// description, branches, changed files, reviewer instructions, per-file
// pre-change snapshots, and the full diff.
func Build(info domain.PullRequestInfo, files []string, snapshots []domain.FileSnapshot, diff, instructions string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Pull Request #%d: %s\n\n", info.Number, info.Title)

	b.WriteString("## Description\n\n")
	if info.Description != "" {
		b.WriteString(info.Description)
		b.WriteString("\n")
	} else {
		b.WriteString("(no description)\n")
	}
	b.WriteString("\n")

	b.WriteString("## Branches\n\n")
	fmt.Fprintf(&b, "Source: %s\nTarget: %s\n\n", info.SourceBranch, info.TargetBranch)

	b.WriteString("## Changed Files\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	if len(files) == 0 {
		b.WriteString("(none)\n")
	}
	b.WriteString("\n")

	b.WriteString("## Review Instructions\n\n")
	b.WriteString(strings.TrimRight(instructions, "\n"))
	b.WriteString("\n\n")

	b.WriteString("## Original Files (before change)\n\n")
	for _, snap := range snapshots {
		writeSnapshot(&b, snap)
	}

	b.WriteString("## Diff\n\n")
	b.WriteString("```diff\n")
	b.WriteString(diff)
	if diff != "" && !strings.HasSuffix(diff, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	return b.String()
}

func writeSnapshot(b *strings.Builder, snap domain.FileSnapshot) {
	fmt.Fprintf(b, "### %s\n\n", snap.Path)
	switch snap.Kind {
	case domain.SnapshotNotFound:
		b.WriteString("(not found in target branch; likely a new file)\n\n")
	case domain.SnapshotTooLarge:
		fmt.Fprintf(b, "(omitted: %d bytes exceeds the %d byte limit)\n\n", snap.Size, MaxSnapshotBytes)
	case domain.SnapshotContent:
		b.WriteString("```\n")
		b.WriteString(snap.Content)
		if snap.Content != "" && !strings.HasSuffix(snap.Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n\n")
	}
}
