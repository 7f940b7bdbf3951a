package soulgem

import (
	"fmt"

	"yastm-generator/core/plugin"
	"yastm-generator/core/storage"
	"yastm-generator/feature/soulgem/filesync"

	"github.com/spf13/afero"
)

const (
	TargetFilesystem = "filesystem"
	TargetBucket     = "bucket"
)

// Config holds configuration for the soul gem generator.
type Config struct {
	// DataFolder is the game data folder the configuration is written to.
	DataFolder string `mapstructure:"data_folder" default:"Data"`
	// Patch is the output plugin receiving synthesized variants.
	Patch string `mapstructure:"patch" default:"YASTMGenerator.esp"`
	// LoadOrder is the path of the plugins.txt listing the active plugins.
	LoadOrder string `mapstructure:"load_order" default:"plugins.txt"`
	// Target selects where the configuration goes (filesystem, bucket).
	Target string `mapstructure:"target" default:"filesystem"`
	// ConfigPrefix is the object key prefix used by the bucket target.
	ConfigPrefix string `mapstructure:"config_prefix" default:"SKSE/Plugins"`
}

// PatchKey returns the output plugin identity.
func (c Config) PatchKey() plugin.ModKey {
	return plugin.ModKey(c.Patch)
}

// Validate checks the configured values.
func (c Config) Validate() error {
	if c.Patch == "" {
		return fmt.Errorf("generator patch name is empty")
	}
	switch c.Target {
	case TargetFilesystem, TargetBucket:
		return nil
	default:
		return fmt.Errorf("unknown generator target %q", c.Target)
	}
}

// NewTarget builds the configured output target. The bucket client is only used
// by the bucket target and may be nil otherwise.
func NewTarget(c Config, fs afero.Fs, client storage.Client, bucket string) (filesync.Target, error) {
	switch c.Target {
	case TargetFilesystem:
		return filesync.NewFSTarget(fs, c.DataFolder), nil
	case TargetBucket:
		if client == nil {
			return nil, fmt.Errorf("bucket target requires a storage client")
		}
		return filesync.NewBucketTarget(client, bucket, c.ConfigPrefix), nil
	default:
		return nil, fmt.Errorf("unknown generator target %q", c.Target)
	}
}
