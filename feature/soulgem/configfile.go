package soulgem

import (
	"fmt"

	"yastm-generator/core/plugin"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is a parsed YASTM configuration.
type ConfigFile struct {
	SoulGems []ConfigEntry
}

// ConfigEntry is one [[soulGems]] table.
type ConfigEntry struct {
	ID         string
	IsReusable bool
	Capacity   int
	Members    []plugin.FormKey
}

type rawConfigFile struct {
	SoulGems []rawConfigEntry `toml:"soulGems"`
}

type rawConfigEntry struct {
	ID         string  `toml:"id"`
	IsReusable bool    `toml:"isReusable"`
	Capacity   int     `toml:"capacity"`
	Members    [][]any `toml:"members"`
}

// ParseConfigFile decodes a configuration produced by the generator.
func ParseConfigFile(data []byte) (*ConfigFile, error) {
	var raw rawConfigFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse soul gem config: %w", err)
	}

	cfg := &ConfigFile{SoulGems: make([]ConfigEntry, 0, len(raw.SoulGems))}
	for i, entry := range raw.SoulGems {
		members := make([]plugin.FormKey, 0, len(entry.Members))
		for j, m := range entry.Members {
			key, err := memberFormKey(m)
			if err != nil {
				return nil, fmt.Errorf("soulGems[%d].members[%d]: %w", i, j, err)
			}
			members = append(members, key)
		}
		cfg.SoulGems = append(cfg.SoulGems, ConfigEntry{
			ID:         entry.ID,
			IsReusable: entry.IsReusable,
			Capacity:   entry.Capacity,
			Members:    members,
		})
	}
	return cfg, nil
}

// memberFormKey converts a [id, "plugin"] pair.
func memberFormKey(pair []any) (plugin.FormKey, error) {
	if len(pair) != 2 {
		return plugin.FormKey{}, fmt.Errorf("expected [id, plugin], got %d elements", len(pair))
	}
	id, ok := pair[0].(int64)
	if !ok || id < 0 || id > 0xFFFFFFFF {
		return plugin.FormKey{}, fmt.Errorf("invalid form id %v", pair[0])
	}
	mod, ok := pair[1].(string)
	if !ok || mod == "" {
		return plugin.FormKey{}, fmt.Errorf("invalid plugin name %v", pair[1])
	}
	return plugin.NewFormKey(plugin.ModKey(mod), uint32(id)), nil
}
