package recordstore

import (
	"fmt"
	"strings"
	"time"

	"yastm-generator/core/plugin"
)

// PluginRow is a plugin known to the database.
type PluginRow struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name.
func (PluginRow) TableName() string {
	return "plugins"
}

// SoulGemRow is one soul gem record stored in a plugin.
type SoulGemRow struct {
	ID              uint    `gorm:"primaryKey"`
	Plugin          string  `gorm:"size:255;uniqueIndex:idx_soul_gem_record,priority:1"`
	FormMod         string  `gorm:"size:255;uniqueIndex:idx_soul_gem_record,priority:2"`
	FormID          uint32  `gorm:"uniqueIndex:idx_soul_gem_record,priority:3"`
	Position        int     `gorm:"not null"`
	EditorID        string  `gorm:"size:255"`
	Name            *string `gorm:"size:255"`
	Value           uint32
	Weight          float32
	ContainedSoul   uint8
	MaximumCapacity uint8
	MajorFlags      uint32
	Keywords        string `gorm:"type:text"`
	LinkedTo        *string `gorm:"size:300"`
}

// TableName overrides the table name.
func (SoulGemRow) TableName() string {
	return "soul_gems"
}

// soulGemColumns are the columns a store needs in soul_gems.
var soulGemColumns = []string{
	"plugin", "form_mod", "form_id", "position", "editor_id", "name", "value", "weight",
	"contained_soul", "maximum_capacity", "major_flags", "keywords", "linked_to",
}

func rowFromSoulGem(owner plugin.ModKey, position int, gem *plugin.SoulGem) SoulGemRow {
	row := SoulGemRow{
		Plugin:          string(owner),
		FormMod:         string(gem.FormKey.ModKey),
		FormID:          gem.FormKey.ID,
		Position:        position,
		EditorID:        gem.EditorID,
		Name:            gem.Name,
		Value:           gem.Value,
		Weight:          gem.Weight,
		ContainedSoul:   uint8(gem.ContainedSoul),
		MaximumCapacity: uint8(gem.MaximumCapacity),
		MajorFlags:      uint32(gem.MajorFlags),
	}

	keywords := make([]string, len(gem.Keywords))
	for i, k := range gem.Keywords {
		keywords[i] = k.String()
	}
	row.Keywords = strings.Join(keywords, ",")

	if gem.LinkedTo != nil {
		linked := gem.LinkedTo.String()
		row.LinkedTo = &linked
	}
	return row
}

func (r SoulGemRow) toSoulGem() (*plugin.SoulGem, error) {
	gem := &plugin.SoulGem{
		FormKey:         plugin.NewFormKey(plugin.ModKey(r.FormMod), r.FormID),
		EditorID:        r.EditorID,
		Name:            r.Name,
		Value:           r.Value,
		Weight:          r.Weight,
		ContainedSoul:   plugin.Level(r.ContainedSoul),
		MaximumCapacity: plugin.Level(r.MaximumCapacity),
		MajorFlags:      plugin.MajorFlag(r.MajorFlags),
	}

	if r.Keywords != "" {
		for _, s := range strings.Split(r.Keywords, ",") {
			k, err := plugin.ParseFormKey(s)
			if err != nil {
				return nil, fmt.Errorf("record %s keyword: %w", gem.FormKey, err)
			}
			gem.Keywords = append(gem.Keywords, k)
		}
	}

	if r.LinkedTo != nil {
		linked, err := plugin.ParseFormKey(*r.LinkedTo)
		if err != nil {
			return nil, fmt.Errorf("record %s link: %w", gem.FormKey, err)
		}
		gem.LinkedTo = &linked
	}
	return gem, nil
}
