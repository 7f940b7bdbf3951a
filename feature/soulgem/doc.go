// Package soulgem generates the soul gem configuration consumed by YASTM.
//
// The generator reads the winning soul gem records of a load order, groups them into
// families and completes every family so that it has one variant per soul level. The
// resulting families are rendered as a TOML document that YASTM parses at runtime.
//
// # Pipeline
//
//  1. Classify: records with a name, a capacity and a soul that fits are grouped by
//     (name, capacity, black soul flag, reusable flag). Within a group, one record per
//     contained soul level forms the variant matrix.
//  2. Validate: groups without an empty variant are skipped, and so are black soul
//     groups whose capacity is not Grand.
//  3. Synthesize: missing variants are created in the output plugin by copying the
//     empty gem. Their value is interpolated between the empty and the filled value.
//     Reusable variants are linked back to the empty gem, overriding existing records
//     when needed.
//  4. Format: each group is appended to the configuration buffer as a [[soulGems]]
//     table whose member comments are aligned.
//  5. Sync: the buffer is written to YASTM_<patch file>.toml, e.g.
//     YASTM_Patch.esp.toml, or the stale file is removed when no group qualified
//     (see package filesync).
//
// # Components
//
//   - Generator: runs steps 1-4 against a load order and an output plugin.
//   - Service: loads plugins from the record store, runs the generator, persists the
//     output plugin and syncs the configuration file.
//   - Handler: exposes preview and generate endpoints over HTTP.
//   - ParseConfigFile: reads an emitted configuration back.
//
// # HTTP Endpoints
//
//   - GET  /soulgems/preview  : Dry run, returns the configuration text.
//   - POST /soulgems/generate : Run, persist and sync, returns the report.
package soulgem
