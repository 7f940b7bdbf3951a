package recordstore

import (
	"context"
	"fmt"
	"io"

	"yastm-generator/core/plugin"

	"gopkg.in/yaml.v3"
)

type importDocument struct {
	Plugins []importPlugin `yaml:"plugins"`
}

type importPlugin struct {
	Name     plugin.ModKey   `yaml:"name"`
	SoulGems []importSoulGem `yaml:"soulGems"`
}

type importSoulGem struct {
	FormKey         *plugin.FormKey  `yaml:"formKey"`
	EditorID        string           `yaml:"editorID"`
	Name            *string          `yaml:"name"`
	Value           uint32           `yaml:"value"`
	Weight          float32          `yaml:"weight"`
	ContainedSoul   plugin.Level     `yaml:"containedSoul"`
	MaximumCapacity plugin.Level     `yaml:"maximumCapacity"`
	CanHoldNpcSoul  bool             `yaml:"canHoldNpcSoul"`
	Keywords        []plugin.FormKey `yaml:"keywords"`
	LinkedTo        *plugin.FormKey  `yaml:"linkedTo"`
}

// ImportResult counts what Import stored.
type ImportResult struct {
	Plugins  int
	SoulGems int
}

// Import reads a YAML document and replaces each plugin it lists.
func (s *Store) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var doc importDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode import document: %w", err)
	}

	mods, err := buildMods(doc)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	for _, mod := range mods {
		if err := s.SaveMod(ctx, mod); err != nil {
			return nil, err
		}
		res.Plugins++
		res.SoulGems += mod.Len()
	}
	return res, nil
}

func buildMods(doc importDocument) ([]*plugin.Mod, error) {
	mods := make([]*plugin.Mod, 0, len(doc.Plugins))
	for i, p := range doc.Plugins {
		if p.Name.IsZero() {
			return nil, fmt.Errorf("plugins[%d]: missing name", i)
		}
		mod := plugin.NewMod(p.Name)
		for j, g := range p.SoulGems {
			if !g.ContainedSoul.Valid() || !g.MaximumCapacity.Valid() {
				return nil, fmt.Errorf("%s soulGems[%d]: invalid soul level", p.Name, j)
			}

			var gem *plugin.SoulGem
			if g.FormKey != nil {
				if _, dup := mod.Get(*g.FormKey); dup {
					return nil, fmt.Errorf("plugins[%d].soulGems[%d]: duplicate form key %s", i, j, *g.FormKey)
				}
				gem = &plugin.SoulGem{FormKey: *g.FormKey, EditorID: g.EditorID}
				mod.Add(gem)
			} else {
				gem = mod.AddNew(g.EditorID)
			}
			gem.Name = g.Name
			gem.Value = g.Value
			gem.Weight = g.Weight
			gem.ContainedSoul = g.ContainedSoul
			gem.MaximumCapacity = g.MaximumCapacity
			gem.Keywords = g.Keywords
			gem.LinkedTo = g.LinkedTo
			if g.CanHoldNpcSoul {
				gem.MajorFlags |= plugin.MajorFlagCanHoldNpcSoul
			}
		}
		mods = append(mods, mod)
	}
	return mods, nil
}
