package domain

// PullRequestInfo holds the metadata fetched for a pull request.
// It is populated once from the hosting API and read-only afterward.
type PullRequestInfo struct {
	Number       int
	SourceBranch string
	TargetBranch string
	Title        string
	Description  string
}

// SnapshotKind classifies what a FileSnapshot carries for a changed path.
type SnapshotKind int

const (
	// SnapshotContent means the full pre-change file content is included.
	SnapshotContent SnapshotKind = iota
	// SnapshotTooLarge means the content was omitted because the blob
	// exceeds the size limit.
	SnapshotTooLarge
	// SnapshotNotFound means the path does not exist in the target branch,
	// which also covers newly added files.
	SnapshotNotFound
)

// FileSnapshot is the pre-change state of one changed path.
type FileSnapshot struct {
	Path    string
	Kind    SnapshotKind
	Content string
	Size    int64
}
