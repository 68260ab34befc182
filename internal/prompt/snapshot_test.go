package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/richhaase/pr-prompt/internal/domain"
)

// fakeSource serves blobs from a map without a real repository.
type fakeSource struct {
	blobs map[string]string
	err   error
}

func (f *fakeSource) BlobExists(_ context.Context, _, path string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.blobs[path]
	return ok, nil
}

func (f *fakeSource) BlobSize(_ context.Context, _, path string) (int64, error) {
	content, ok := f.blobs[path]
	if !ok {
		return 0, fmt.Errorf("no blob for %s", path)
	}
	return int64(len(content)), nil
}

func (f *fakeSource) BlobContent(_ context.Context, _, path string) (string, error) {
	content, ok := f.blobs[path]
	if !ok {
		return "", fmt.Errorf("no blob for %s", path)
	}
	return content, nil
}

func TestCollectSnapshots_Content(t *testing.T) {
	src := &fakeSource{blobs: map[string]string{"main.go": "package main\n"}}

	snaps, err := CollectSnapshots(context.Background(), src, "origin/main", []string{"main.go"})
	if err != nil {
		t.Fatalf("CollectSnapshots() error = %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(snaps))
	}
	if snaps[0].Kind != domain.SnapshotContent {
		t.Errorf("Kind = %v, want SnapshotContent", snaps[0].Kind)
	}
	if snaps[0].Content != "package main\n" {
		t.Errorf("Content = %q, want file content", snaps[0].Content)
	}
}

func TestCollectSnapshots_NotFound(t *testing.T) {
	src := &fakeSource{blobs: map[string]string{}}

	snaps, err := CollectSnapshots(context.Background(), src, "origin/main", []string{"added.go"})
	if err != nil {
		t.Fatalf("CollectSnapshots() error = %v", err)
	}
	if snaps[0].Kind != domain.SnapshotNotFound {
		t.Errorf("Kind = %v, want SnapshotNotFound", snaps[0].Kind)
	}
	if snaps[0].Content != "" {
		t.Errorf("Content = %q, want empty for missing blob", snaps[0].Content)
	}
}

func TestCollectSnapshots_TooLarge(t *testing.T) {
	big := strings.Repeat("x", MaxSnapshotBytes+1)
	src := &fakeSource{blobs: map[string]string{"big.bin": big}}

	snaps, err := CollectSnapshots(context.Background(), src, "origin/main", []string{"big.bin"})
	if err != nil {
		t.Fatalf("CollectSnapshots() error = %v", err)
	}
	if snaps[0].Kind != domain.SnapshotTooLarge {
		t.Errorf("Kind = %v, want SnapshotTooLarge", snaps[0].Kind)
	}
	if snaps[0].Size != int64(MaxSnapshotBytes+1) {
		t.Errorf("Size = %d, want %d", snaps[0].Size, MaxSnapshotBytes+1)
	}
	if snaps[0].Content != "" {
		t.Error("oversized snapshot must not carry content")
	}
}

func TestCollectSnapshots_ExactLimitIncluded(t *testing.T) {
	exact := strings.Repeat("x", MaxSnapshotBytes)
	src := &fakeSource{blobs: map[string]string{"edge.txt": exact}}

	snaps, err := CollectSnapshots(context.Background(), src, "origin/main", []string{"edge.txt"})
	if err != nil {
		t.Fatalf("CollectSnapshots() error = %v", err)
	}
	if snaps[0].Kind != domain.SnapshotContent {
		t.Errorf("Kind = %v, want SnapshotContent at exactly the limit", snaps[0].Kind)
	}
}

func TestCollectSnapshots_PreservesOrder(t *testing.T) {
	src := &fakeSource{blobs: map[string]string{"a.go": "a", "b.go": "b"}}

	snaps, err := CollectSnapshots(context.Background(), src, "origin/main", []string{"b.go", "a.go"})
	if err != nil {
		t.Fatalf("CollectSnapshots() error = %v", err)
	}
	if snaps[0].Path != "b.go" || snaps[1].Path != "a.go" {
		t.Errorf("order = [%s %s], want [b.go a.go]", snaps[0].Path, snaps[1].Path)
	}
}

func TestCollectSnapshots_PropagatesError(t *testing.T) {
	wantErr := errors.New("repository unavailable")
	src := &fakeSource{err: wantErr}

	_, err := CollectSnapshots(context.Background(), src, "origin/main", []string{"a.go"})
	if !errors.Is(err, wantErr) {
		t.Errorf("CollectSnapshots() error = %v, want %v", err, wantErr)
	}
}
