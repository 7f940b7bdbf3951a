package plugin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFormKey(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "0x800:Master.esm", NewFormKey("Master.esm", 0x800).String())
	})

	t.Run("Parse", func(t *testing.T) {
		key, err := ParseFormKey("0x0ED2F1:Skyrim.esm")
		require.NoError(t, err)
		assert.Equal(t, KeywordReusableSoulGem, key)

		key, err = ParseFormKey("000801:Patch.esp")
		require.NoError(t, err)
		assert.Equal(t, NewFormKey("Patch.esp", 0x801), key)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseFormKey("Master.esm")
		assert.Error(t, err)
		_, err = ParseFormKey("zz:Master.esm")
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("greater")
	require.NoError(t, err)
	assert.Equal(t, LevelGreater, l)

	l, err = ParseLevel("5")
	require.NoError(t, err)
	assert.Equal(t, LevelGrand, l)

	_, err = ParseLevel("Huge")
	assert.Error(t, err)
	_, err = ParseLevel("9")
	assert.Error(t, err)

	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestMod_AddNewAllocatesIDs(t *testing.T) {
	m := NewMod("Patch.esp")
	a := m.AddNew("a")
	b := m.AddNew("b")

	assert.Equal(t, NewFormKey("Patch.esp", 0x800), a.FormKey)
	assert.Equal(t, NewFormKey("Patch.esp", 0x801), b.FormKey)
	assert.Equal(t, 2, m.Len())
}

func TestMod_GetOrAddAsOverride(t *testing.T) {
	master := NewMod("Master.esm")
	src := master.AddNew("gem")
	src.Name = strPtr("Gem")
	src.Keywords = []FormKey{KeywordReusableSoulGem}

	patch := NewMod("Patch.esp")
	override := patch.GetOrAddAsOverride(src)
	require.NotSame(t, src, override)
	assert.Equal(t, src.FormKey, override.FormKey)

	// Mutating the override leaves the source untouched.
	override.SetLinkedTo(NewFormKey("Master.esm", 0x900))
	*override.Name = "Changed"
	override.Keywords[0] = NewFormKey("Other.esp", 1)
	assert.Nil(t, src.LinkedTo)
	assert.Equal(t, "Gem", *src.Name)
	assert.True(t, src.IsReusable())

	again := patch.GetOrAddAsOverride(src)
	assert.Same(t, override, again)
	assert.Equal(t, 1, patch.Len())

	// Overrides do not consume local IDs of the patch.
	assert.Equal(t, NewFormKey("Patch.esp", 0x800), patch.AddNew("new").FormKey)
}

func TestSoulGem_DeepCopyInMask(t *testing.T) {
	src := &SoulGem{
		FormKey:         NewFormKey("Master.esm", 0x800),
		EditorID:        "gem",
		Name:            strPtr("Gem"),
		Value:           200,
		Weight:          0.5,
		ContainedSoul:   LevelPetty,
		MaximumCapacity: LevelGrand,
		MajorFlags:      MajorFlagCanHoldNpcSoul,
		LinkedTo:        &FormKey{ModKey: "Master.esm", ID: 0x801},
	}

	mask := CopyAll()
	mask.EditorID = false
	mask.ContainedSoul = false
	mask.LinkedTo = false

	dst := &SoulGem{FormKey: NewFormKey("Patch.esp", 0x800), EditorID: "dst"}
	dst.DeepCopyIn(src, mask)

	assert.Equal(t, NewFormKey("Patch.esp", 0x800), dst.FormKey)
	assert.Equal(t, "dst", dst.EditorID)
	assert.Equal(t, LevelNone, dst.ContainedSoul)
	assert.Nil(t, dst.LinkedTo)
	assert.Equal(t, "Gem", *dst.Name)
	assert.Equal(t, uint32(200), dst.Value)
	assert.Equal(t, float32(0.5), dst.Weight)
	assert.Equal(t, LevelGrand, dst.MaximumCapacity)
	assert.True(t, dst.CanHoldNpcSoul())
}

func TestSoulGem_DisplayName(t *testing.T) {
	_, ok := (&SoulGem{}).DisplayName()
	assert.False(t, ok)
	_, ok = (&SoulGem{Name: strPtr("")}).DisplayName()
	assert.False(t, ok)
	name, ok := (&SoulGem{Name: strPtr("Gem")}).DisplayName()
	assert.True(t, ok)
	assert.Equal(t, "Gem", name)
}

func TestLoadOrder_WinningOverrides(t *testing.T) {
	master := NewMod("Master.esm")
	a := master.AddNew("a")
	b := master.AddNew("b")

	patch := NewMod("Patch.esp")
	added := patch.AddNew("c")
	bOverride := patch.GetOrAddAsOverride(b)
	bOverride.Value = 42

	lo := NewLoadOrder(master, patch)
	winners := lo.WinningOverrides()

	require.Len(t, winners, 3)
	assert.Same(t, a, winners[0])
	assert.Same(t, bOverride, winners[1])
	assert.Same(t, added, winners[2])

	got, ok := lo.Resolve(b.FormKey)
	require.True(t, ok)
	assert.Equal(t, uint32(42), got.Value)

	_, ok = lo.Resolve(NewFormKey("Missing.esp", 1))
	assert.False(t, ok)
}

func TestParseLoadOrder(t *testing.T) {
	input := `# This file is used by the game
*Skyrim.esm

*Master.esm
Disabled.esp
*Master.esm
`
	keys, err := ParseLoadOrder(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []ModKey{"Skyrim.esm", "Master.esm", "Disabled.esp"}, keys)
}
