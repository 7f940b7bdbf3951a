package plugin

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the size of a soul, used both for the soul a gem contains and for the
// largest soul it can hold.
type Level uint8

const (
	LevelNone Level = iota
	LevelPetty
	LevelLesser
	LevelCommon
	LevelGreater
	LevelGrand
)

// Levels lists every level in ascending order.
var Levels = []Level{LevelNone, LevelPetty, LevelLesser, LevelCommon, LevelGreater, LevelGrand}

var levelNames = map[Level]string{
	LevelNone:    "None",
	LevelPetty:   "Petty",
	LevelLesser:  "Lesser",
	LevelCommon:  "Common",
	LevelGreater: "Greater",
	LevelGrand:   "Grand",
}

// String returns the level name, e.g. "Petty".
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l <= LevelGrand
}

// ParseLevel parses a level name (case insensitive) or its numeric value.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for l, name := range levelNames {
		if strings.EqualFold(name, s) {
			return l, nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return LevelNone, fmt.Errorf("unknown soul level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
