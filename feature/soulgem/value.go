package soulgem

import (
	"fmt"
	"math"

	"yastm-generator/core/plugin"
)

// soulWeights is the relative worth of a soul at each level.
var soulWeights = map[plugin.Level]uint32{
	plugin.LevelNone:    0,
	plugin.LevelPetty:   250,
	plugin.LevelLesser:  500,
	plugin.LevelCommon:  1000,
	plugin.LevelGreater: 2000,
	plugin.LevelGrand:   3000,
}

// SoulWeight returns the relative worth of a soul level.
func SoulWeight(l plugin.Level) (uint32, bool) {
	w, ok := soulWeights[l]
	return w, ok
}

// DefaultMaxValue is the filled value assumed when a group has no filled gem:
// twice the empty value, capped at math.MaxUint32. This is a pricing policy, not
// something derived from the game data.
func DefaultMaxValue(base uint32) uint32 {
	return uint32(min(uint64(base)*2, math.MaxUint32))
}

// Interpolator prices the variants of one group on a straight line from the empty
// value (no soul) to the filled value (a soul matching the capacity).
type Interpolator struct {
	base  uint32
	delta int64
	ratio float64
}

// NewInterpolator builds an interpolator for a group with the given capacity.
func NewInterpolator(base, max uint32, capacity plugin.Level) (Interpolator, error) {
	w, ok := SoulWeight(capacity)
	if !ok || w == 0 {
		return Interpolator{}, fmt.Errorf("%w: %s", ErrUnmappedCapacity, capacity)
	}
	return Interpolator{
		base:  base,
		delta: int64(max) - int64(base),
		ratio: 1.0 / float64(w),
	}, nil
}

// ValueAt returns the value of a variant holding a soul of level l. Fractions are
// truncated, never rounded.
func (i Interpolator) ValueAt(l plugin.Level) uint32 {
	w := soulWeights[l]
	v := float64(i.base) + float64(w)*i.ratio*float64(i.delta)
	switch {
	case v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
