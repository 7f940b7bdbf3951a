package filesync

import (
	"context"
	"fmt"
)

// Target stores named files.
type Target interface {
	// Exists reports whether name is present.
	Exists(ctx context.Context, name string) (bool, error)
	// Write replaces the content of name.
	Write(ctx context.Context, name string, data []byte) error
	// Remove deletes name.
	Remove(ctx context.Context, name string) error
	// Location describes where name is stored, for logs.
	Location(name string) string
}

// Outcome is the file system effect of a Sync.
type Outcome string

const (
	OutcomeWritten   Outcome = "written"
	OutcomeDeleted   Outcome = "deleted"
	OutcomeUnchanged Outcome = "unchanged"
)

// Sync writes data to name, or removes name when data is empty.
func Sync(ctx context.Context, target Target, name string, data []byte) (Outcome, error) {
	if len(data) > 0 {
		if err := target.Write(ctx, name, data); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", target.Location(name), err)
		}
		return OutcomeWritten, nil
	}

	exists, err := target.Exists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", target.Location(name), err)
	}
	if !exists {
		return OutcomeUnchanged, nil
	}
	if err := target.Remove(ctx, name); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", target.Location(name), err)
	}
	return OutcomeDeleted, nil
}
