package plugin

import (
	"fmt"
	"strconv"
	"strings"
)

// ModKey identifies a plugin by its file name, e.g. "Skyrim.esm".
type ModKey string

// FileName returns the plugin file name.
func (k ModKey) FileName() string {
	return string(k)
}

// IsZero reports whether the key is empty.
func (k ModKey) IsZero() bool {
	return k == ""
}

// FormKey is the unique identity of a record: the plugin that defines it and its local ID.
type FormKey struct {
	ModKey ModKey
	ID     uint32
}

// NewFormKey builds a FormKey.
func NewFormKey(mod ModKey, id uint32) FormKey {
	return FormKey{ModKey: mod, ID: id}
}

// IsZero reports whether the FormKey is unset.
func (k FormKey) IsZero() bool {
	return k.ModKey.IsZero() && k.ID == 0
}

// String renders the key as "0x800:Master.esm".
func (k FormKey) String() string {
	return fmt.Sprintf("0x%x:%s", k.ID, k.ModKey)
}

// ParseFormKey parses the String form. A bare "000800:Master.esm" (no 0x prefix) is
// read as hexadecimal too.
func ParseFormKey(s string) (FormKey, error) {
	id, mod, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || mod == "" {
		return FormKey{}, fmt.Errorf("invalid form key %q: expected <id>:<plugin>", s)
	}
	id = strings.TrimPrefix(strings.TrimPrefix(id, "0x"), "0X")
	n, err := strconv.ParseUint(id, 16, 32)
	if err != nil {
		return FormKey{}, fmt.Errorf("invalid form key %q: %w", s, err)
	}
	return FormKey{ModKey: ModKey(mod), ID: uint32(n)}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k FormKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FormKey) UnmarshalText(text []byte) error {
	parsed, err := ParseFormKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
