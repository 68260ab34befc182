// Package prompt collects pre-change file snapshots and assembles the
// review prompt document.
package prompt

import (
	"context"

	"github.com/richhaase/pr-prompt/internal/domain"
)

// MaxSnapshotBytes is the per-file size limit for embedding pre-change
// content. Larger blobs are replaced with an omission marker to bound the
// size of the generated document.
const MaxSnapshotBytes = 50 * 1024

// BlobSource reads file blobs at a given ref. *git.Repo satisfies it.
type BlobSource interface {
	BlobExists(ctx context.Context, ref, path string) (bool, error)
	BlobSize(ctx context.Context, ref, path string) (int64, error)
	BlobContent(ctx context.Context, ref, path string) (string, error)
}

// CollectSnapshots retrieves the pre-change state of each path from the tree
// at ref, in the given order. Paths missing from the tree (newly added
// files) get a not-found marker; blobs over MaxSnapshotBytes get an
// omission marker naming the measured size.
func CollectSnapshots(ctx context.Context, src BlobSource, ref string, paths []string) ([]domain.FileSnapshot, error) {
	snapshots := make([]domain.FileSnapshot, 0, len(paths))
	for _, path := range paths {
		snap, err := collectOne(ctx, src, ref, path)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

func collectOne(ctx context.Context, src BlobSource, ref, path string) (domain.FileSnapshot, error) {
	exists, err := src.BlobExists(ctx, ref, path)
	if err != nil {
		return domain.FileSnapshot{}, err
	}
	if !exists {
		return domain.FileSnapshot{Path: path, Kind: domain.SnapshotNotFound}, nil
	}

	size, err := src.BlobSize(ctx, ref, path)
	if err != nil {
		return domain.FileSnapshot{}, err
	}
	if size > MaxSnapshotBytes {
		return domain.FileSnapshot{Path: path, Kind: domain.SnapshotTooLarge, Size: size}, nil
	}

	content, err := src.BlobContent(ctx, ref, path)
	if err != nil {
		return domain.FileSnapshot{}, err
	}
	return domain.FileSnapshot{Path: path, Kind: domain.SnapshotContent, Content: content, Size: size}, nil
}
