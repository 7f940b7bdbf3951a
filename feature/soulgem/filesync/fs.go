package filesync

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is a Target rooted at a directory.
type FS struct {
	fs  afero.Fs
	dir string
}

// NewFSTarget creates a target writing into dir on fs.
func NewFSTarget(fs afero.Fs, dir string) *FS {
	return &FS{fs: fs, dir: dir}
}

// Location returns the path of name.
func (t *FS) Location(name string) string {
	return filepath.Join(t.dir, name)
}

// Exists reports whether the file is present.
func (t *FS) Exists(_ context.Context, name string) (bool, error) {
	return afero.Exists(t.fs, t.Location(name))
}

// Write replaces the file through a temporary sibling so readers never see a
// partial configuration.
func (t *FS) Write(_ context.Context, name string, data []byte) error {
	if err := t.fs.MkdirAll(t.dir, 0o755); err != nil {
		return err
	}
	path := t.Location(name)
	tmp := path + ".tmp"
	if err := afero.WriteFile(t.fs, tmp, data, 0o644); err != nil {
		return err
	}
	if err := t.fs.Rename(tmp, path); err != nil {
		_ = t.fs.Remove(tmp)
		return err
	}
	return nil
}

// Remove deletes the file.
func (t *FS) Remove(_ context.Context, name string) error {
	return t.fs.Remove(t.Location(name))
}
