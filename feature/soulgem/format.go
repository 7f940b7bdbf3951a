package soulgem

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"yastm-generator/core/plugin"
)

// ErrUnmappedCapacity means a group reached formatting with a capacity that has no
// slot count. Classification only lets defined levels through, so this indicates
// corrupted input and aborts the run.
var ErrUnmappedCapacity = errors.New("unmapped soul gem capacity")

// BlackSoulCapacity is the slot count YASTM uses for black soul gems.
const BlackSoulCapacity = 6

const (
	labelEmpty  = "Empty"
	labelFilled = "Filled"
)

var capacities = map[plugin.Level]int{
	plugin.LevelPetty:   1,
	plugin.LevelLesser:  2,
	plugin.LevelCommon:  3,
	plugin.LevelGreater: 4,
	plugin.LevelGrand:   5,
}

// Capacity returns the capacity field written for a group.
func Capacity(key Key) (int, error) {
	if key.CanHoldNpcSoul {
		return BlackSoulCapacity, nil
	}
	c, ok := capacities[key.MaximumCapacity]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnmappedCapacity, key.MaximumCapacity)
	}
	return c, nil
}

// ConfigFileName returns the file name of the configuration generated for a patch.
func ConfigFileName(patch plugin.ModKey) string {
	return "YASTM_" + patch.FileName() + ".toml"
}

// FormatSoulGemLink renders the members entry of a record, e.g.
// `    [0x800, "Master.esm"], `.
func FormatSoulGemLink(gem *plugin.SoulGem) string {
	return fmt.Sprintf("    [0x%x, %s], ", gem.FormKey.ID, quote(gem.FormKey.ModKey.FileName()))
}

// member is one line of a members array.
type member struct {
	label string
	link  string
}

// memberLabel names a filled variant: the level name, or "Filled" at capacity.
func memberLabel(l plugin.Level, key Key) string {
	if l < key.MaximumCapacity {
		return l.String()
	}
	return labelFilled
}

// writeBlock appends one [[soulGems]] table to buf.
func writeBlock(buf *bytes.Buffer, key Key, capacity int, members []member) {
	buf.WriteString("[[soulGems]]\n")
	fmt.Fprintf(buf, "id = %s\n", quote(key.Name))
	if key.IsReusable {
		buf.WriteString("isReusable = true\n")
	}
	fmt.Fprintf(buf, "capacity = %d\n", capacity)
	buf.WriteString("members = [\n")

	width := 0
	for _, m := range members {
		width = max(width, utf8.RuneCountInString(m.link))
	}
	for _, m := range members {
		fmt.Fprintf(buf, "%-*s# %s\n", width, m.link, m.label)
	}

	buf.WriteString("]\n")
	buf.WriteString("\n")
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders s as a TOML basic string.
func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
