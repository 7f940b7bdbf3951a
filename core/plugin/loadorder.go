package plugin

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadOrder is a stack of plugins; later plugins override earlier ones.
type LoadOrder struct {
	mods []*Mod
}

// NewLoadOrder builds a load order from plugins listed lowest priority first.
func NewLoadOrder(mods ...*Mod) *LoadOrder {
	return &LoadOrder{mods: mods}
}

// Mods returns the plugins, lowest priority first.
func (lo *LoadOrder) Mods() []*Mod {
	return lo.mods
}

// Mod returns the plugin with the given key.
func (lo *LoadOrder) Mod(key ModKey) (*Mod, bool) {
	for _, m := range lo.mods {
		if m.ModKey() == key {
			return m, true
		}
	}
	return nil, false
}

// WinningOverrides returns one record per FormKey: the version from the highest
// priority plugin that carries it. Records are ordered by the first appearance of
// their FormKey in the load order, so overrides and records appended by later plugins
// never reorder what earlier plugins define.
func (lo *LoadOrder) WinningOverrides() []*SoulGem {
	var order []FormKey
	winners := make(map[FormKey]*SoulGem)
	for _, m := range lo.mods {
		for _, g := range m.SoulGems() {
			if _, seen := winners[g.FormKey]; !seen {
				order = append(order, g.FormKey)
			}
			winners[g.FormKey] = g
		}
	}

	out := make([]*SoulGem, 0, len(order))
	for _, key := range order {
		out = append(out, winners[key])
	}
	return out
}

// Resolve returns the winning version of the record with the given FormKey.
func (lo *LoadOrder) Resolve(key FormKey) (*SoulGem, bool) {
	for i := len(lo.mods) - 1; i >= 0; i-- {
		if g, ok := lo.mods[i].Get(key); ok {
			return g, true
		}
	}
	return nil, false
}

// ParseLoadOrder reads a plugins.txt listing: one plugin per line, '#' comments and
// blank lines ignored, a leading '*' (active marker) stripped. Duplicates keep their
// first position.
func ParseLoadOrder(r io.Reader) ([]ModKey, error) {
	var keys []ModKey
	seen := make(map[ModKey]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := ModKey(strings.TrimSpace(strings.TrimPrefix(line, "*")))
		if key.IsZero() {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read load order: %w", err)
	}
	return keys, nil
}
