package soulgem

import (
	"errors"

	"yastm-generator/core/plugin"
)

var (
	// ErrNoEmptyVariant is the skip reason for groups without an empty gem.
	ErrNoEmptyVariant = errors.New("group has no empty variant")
	// ErrBlackSoulCapacity is the skip reason for black soul groups below Grand capacity.
	ErrBlackSoulCapacity = errors.New("black soul group capacity is not grand")
)

// Key identifies a family of soul gem variants.
type Key struct {
	Name            string
	MaximumCapacity plugin.Level
	CanHoldNpcSoul  bool
	IsReusable      bool
}

// Matrix maps a contained soul level to the variant holding it.
type Matrix map[plugin.Level]plugin.FormKey

// Group is one family of variants.
type Group struct {
	Key Key
	// Members holds every record of the family in first-seen order, including
	// duplicates that lost their matrix slot.
	Members []*plugin.SoulGem
	Matrix  Matrix
}

// Empty returns the handle of the empty variant.
func (g *Group) Empty() (plugin.FormKey, bool) {
	key, ok := g.Matrix[plugin.LevelNone]
	return key, ok
}

// Validate reports why the group cannot be processed, or nil when it can.
func (g *Group) Validate() error {
	if _, ok := g.Empty(); !ok {
		return ErrNoEmptyVariant
	}
	if g.Key.CanHoldNpcSoul && g.Key.MaximumCapacity != plugin.LevelGrand {
		return ErrBlackSoulCapacity
	}
	return nil
}

// RequiredLevels lists the filled levels the group must provide, ascending.
func (g *Group) RequiredLevels() []plugin.Level {
	if g.Key.CanHoldNpcSoul {
		return []plugin.Level{g.Key.MaximumCapacity}
	}
	var levels []plugin.Level
	for l := plugin.LevelPetty; l <= g.Key.MaximumCapacity && l.Valid(); l++ {
		levels = append(levels, l)
	}
	return levels
}

// Classifiable reports whether a record takes part in classification: it has a
// name, a capacity, and its soul fits.
func Classifiable(gem *plugin.SoulGem) bool {
	if _, ok := gem.DisplayName(); !ok {
		return false
	}
	return gem.MaximumCapacity != plugin.LevelNone && gem.ContainedSoul <= gem.MaximumCapacity
}

// KeyOf returns the classification key of a classifiable record.
func KeyOf(gem *plugin.SoulGem) Key {
	name, _ := gem.DisplayName()
	return Key{
		Name:            name,
		MaximumCapacity: gem.MaximumCapacity,
		CanHoldNpcSoul:  gem.CanHoldNpcSoul(),
		IsReusable:      gem.IsReusable(),
	}
}

// Classify groups records by Key, keeping groups in the order their first member
// appears. The first record seen at a level owns that level of the matrix.
func Classify(records []*plugin.SoulGem) []*Group {
	var groups []*Group
	byKey := make(map[Key]*Group)

	for _, gem := range records {
		if !Classifiable(gem) {
			continue
		}
		key := KeyOf(gem)
		group, ok := byKey[key]
		if !ok {
			group = &Group{Key: key, Matrix: make(Matrix)}
			byKey[key] = group
			groups = append(groups, group)
		}
		group.Members = append(group.Members, gem)
		if _, taken := group.Matrix[gem.ContainedSoul]; !taken {
			group.Matrix[gem.ContainedSoul] = gem.FormKey
		}
	}
	return groups
}
