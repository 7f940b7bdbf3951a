package soulgem

import (
	"bytes"
	"fmt"

	"yastm-generator/core/plugin"

	"go.uber.org/zap"
)

// variantCopyMask copies everything from the empty gem except what identifies a
// variant.
var variantCopyMask = func() plugin.CopyMask {
	m := plugin.CopyAll()
	m.EditorID = false
	m.ContainedSoul = false
	m.LinkedTo = false
	return m
}()

// Result is the outcome of a generator run.
type Result struct {
	// Config is the generated configuration; empty when no group qualified.
	Config []byte
	// Report summarizes the run.
	Report Report
}

// Generator completes soul gem families and renders their configuration.
type Generator struct {
	loadOrder *plugin.LoadOrder
	patch     *plugin.Mod
	logger    *zap.Logger
}

// NewGenerator creates a generator reading from loadOrder and writing into patch.
// The patch may itself be part of the load order.
func NewGenerator(loadOrder *plugin.LoadOrder, patch *plugin.Mod, logger *zap.Logger) *Generator {
	return &Generator{
		loadOrder: loadOrder,
		patch:     patch,
		logger:    logger,
	}
}

// Run processes every family once. Changes to the patch are made in place; the
// returned configuration is only complete when err is nil.
func (g *Generator) Run() (*Result, error) {
	records := g.loadOrder.WinningOverrides()

	index := make(map[plugin.FormKey]*plugin.SoulGem, len(records))
	for _, gem := range records {
		index[gem.FormKey] = gem
	}

	groups := Classify(records)
	res := &Result{Report: Report{Groups: len(groups), Actions: []Action{}}}

	var buf bytes.Buffer
	for _, group := range groups {
		if err := group.Validate(); err != nil {
			g.logger.Debug("Skipping soul gem group",
				zap.String("name", group.Key.Name),
				zap.Stringer("capacity", group.Key.MaximumCapacity),
				zap.Error(err),
			)
			res.Report.Skipped++
			continue
		}

		if err := g.processGroup(&buf, group, index, &res.Report); err != nil {
			return nil, fmt.Errorf("soul gem group %q: %w", group.Key.Name, err)
		}
		res.Report.Emitted++
	}

	res.Config = buf.Bytes()
	return res, nil
}

// processGroup completes one validated group and appends its block to buf.
func (g *Generator) processGroup(buf *bytes.Buffer, group *Group, index map[plugin.FormKey]*plugin.SoulGem, report *Report) error {
	capacity, err := Capacity(group.Key)
	if err != nil {
		return err
	}

	emptyKey, _ := group.Empty()
	empty := index[emptyKey]

	maxValue := DefaultMaxValue(empty.Value)
	if filledKey, ok := group.Matrix[group.Key.MaximumCapacity]; ok {
		maxValue = index[filledKey].Value
	}
	prices, err := NewInterpolator(empty.Value, maxValue, group.Key.MaximumCapacity)
	if err != nil {
		return err
	}

	s := &synthesizer{
		group:  group,
		empty:  empty,
		index:  index,
		patch:  g.patch,
		prices: prices,
		report: report,
		logger: g.logger,
	}

	members := []member{{label: labelEmpty, link: FormatSoulGemLink(empty)}}
	for _, l := range group.RequiredLevels() {
		variant := s.findOrAdd(l)
		members = append(members, member{label: memberLabel(l, group.Key), link: FormatSoulGemLink(variant)})
	}

	writeBlock(buf, group.Key, capacity, members)
	return nil
}

// synthesizer finds or creates the variants of one group.
type synthesizer struct {
	group  *Group
	empty  *plugin.SoulGem
	index  map[plugin.FormKey]*plugin.SoulGem
	patch  *plugin.Mod
	prices Interpolator
	report *Report
	logger *zap.Logger
}

// findOrAdd returns the variant at level l, creating it when the matrix has none.
// Repeated calls for the same level return the same record.
func (s *synthesizer) findOrAdd(l plugin.Level) *plugin.SoulGem {
	key := s.group.Key
	if handle, ok := s.group.Matrix[l]; ok {
		existing := s.index[handle]
		if key.IsReusable && !existing.LinksTo(s.empty.FormKey) {
			existing = s.patch.GetOrAddAsOverride(existing)
			existing.SetLinkedTo(s.empty.FormKey)
			s.index[handle] = existing
			s.note(ActionRelink, existing)
		}
		return existing
	}

	suffix := ""
	if l < key.MaximumCapacity {
		suffix = l.String()
	}
	gem := s.patch.AddNew(s.empty.EditorID + "Filled" + suffix)
	gem.DeepCopyIn(s.empty, variantCopyMask)
	gem.ContainedSoul = l
	if key.IsReusable {
		gem.SetLinkedTo(s.empty.FormKey)
	}
	gem.Value = s.prices.ValueAt(l)

	s.group.Matrix[l] = gem.FormKey
	s.index[gem.FormKey] = gem
	s.note(ActionCreate, gem)
	return gem
}

func (s *synthesizer) note(t ActionType, gem *plugin.SoulGem) {
	s.logger.Debug("Soul gem variant changed",
		zap.String("action", string(t)),
		zap.Stringer("form_key", gem.FormKey),
		zap.String("group", s.group.Key.Name),
		zap.Stringer("level", gem.ContainedSoul),
		zap.Uint32("value", gem.Value),
	)
	s.report.record(Action{
		Type:    t,
		FormKey: gem.FormKey.String(),
		Group:   s.group.Key.Name,
		Level:   gem.ContainedSoul.String(),
		Value:   gem.Value,
	})
}
