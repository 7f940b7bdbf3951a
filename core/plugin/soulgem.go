package plugin

import "slices"

// MajorFlag is a record-level flag bitmask.
type MajorFlag uint32

// MajorFlagCanHoldNpcSoul marks gems that accept black (NPC) souls.
const MajorFlagCanHoldNpcSoul MajorFlag = 0x20000

// KeywordReusableSoulGem is the vanilla keyword marking a soul gem that survives use.
var KeywordReusableSoulGem = FormKey{ModKey: "Skyrim.esm", ID: 0x0ED2F1}

// SoulGem is a soul gem record.
type SoulGem struct {
	FormKey  FormKey
	EditorID string
	// Name is the in-game display name; nil when the record has none.
	Name            *string
	Value           uint32
	Weight          float32
	ContainedSoul   Level
	MaximumCapacity Level
	MajorFlags      MajorFlag
	Keywords        []FormKey
	// LinkedTo is the record a reusable gem reverts to once its soul is spent.
	LinkedTo *FormKey
}

// DisplayName returns the name and whether one is present and non-empty.
func (g *SoulGem) DisplayName() (string, bool) {
	if g.Name == nil || *g.Name == "" {
		return "", false
	}
	return *g.Name, true
}

// CanHoldNpcSoul reports whether the black soul flag is set.
func (g *SoulGem) CanHoldNpcSoul() bool {
	return g.MajorFlags&MajorFlagCanHoldNpcSoul != 0
}

// HasKeyword reports whether the record carries kw.
func (g *SoulGem) HasKeyword(kw FormKey) bool {
	return slices.Contains(g.Keywords, kw)
}

// IsReusable reports whether the record carries the ReusableSoulGem keyword.
func (g *SoulGem) IsReusable() bool {
	return g.HasKeyword(KeywordReusableSoulGem)
}

// LinksTo reports whether LinkedTo is set and points at target.
func (g *SoulGem) LinksTo(target FormKey) bool {
	return g.LinkedTo != nil && *g.LinkedTo == target
}

// SetLinkedTo points LinkedTo at target.
func (g *SoulGem) SetLinkedTo(target FormKey) {
	g.LinkedTo = &target
}

// CopyMask selects which fields DeepCopyIn copies. The FormKey is never copied.
type CopyMask struct {
	EditorID        bool
	Name            bool
	Value           bool
	Weight          bool
	ContainedSoul   bool
	MaximumCapacity bool
	MajorFlags      bool
	Keywords        bool
	LinkedTo        bool
}

// CopyAll is a mask with every field enabled.
func CopyAll() CopyMask {
	return CopyMask{
		EditorID:        true,
		Name:            true,
		Value:           true,
		Weight:          true,
		ContainedSoul:   true,
		MaximumCapacity: true,
		MajorFlags:      true,
		Keywords:        true,
		LinkedTo:        true,
	}
}

// DeepCopyIn copies the fields of src enabled in mask into g. Pointer and slice
// fields are cloned so the two records never share state.
func (g *SoulGem) DeepCopyIn(src *SoulGem, mask CopyMask) {
	if mask.EditorID {
		g.EditorID = src.EditorID
	}
	if mask.Name {
		g.Name = nil
		if src.Name != nil {
			name := *src.Name
			g.Name = &name
		}
	}
	if mask.Value {
		g.Value = src.Value
	}
	if mask.Weight {
		g.Weight = src.Weight
	}
	if mask.ContainedSoul {
		g.ContainedSoul = src.ContainedSoul
	}
	if mask.MaximumCapacity {
		g.MaximumCapacity = src.MaximumCapacity
	}
	if mask.MajorFlags {
		g.MajorFlags = src.MajorFlags
	}
	if mask.Keywords {
		g.Keywords = slices.Clone(src.Keywords)
	}
	if mask.LinkedTo {
		g.LinkedTo = nil
		if src.LinkedTo != nil {
			g.SetLinkedTo(*src.LinkedTo)
		}
	}
}

// Clone returns a deep copy of g including its FormKey.
func (g *SoulGem) Clone() *SoulGem {
	c := &SoulGem{FormKey: g.FormKey}
	c.DeepCopyIn(g, CopyAll())
	return c
}
