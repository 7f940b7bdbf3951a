// Package filesync keeps a generated configuration file in step with the
// latest run.
//
// # Targets
//
// A Target stores named files. Two implementations exist:
//
//   - FS: a directory on an afero filesystem, normally the game's data folder.
//   - Bucket: an object storage bucket behind core/storage, for publishing the
//     configuration to a mod distribution pipeline.
//
// # Sync
//
// Sync writes a non-empty buffer over any existing file. An empty buffer means
// no soul gem group qualified, so a file left by an earlier run is removed.
// An empty buffer with no existing file is a no-op.
package filesync
