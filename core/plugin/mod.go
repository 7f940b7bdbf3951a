package plugin

// FirstLocalID is the first local ID handed out to new records; lower IDs are reserved.
const FirstLocalID uint32 = 0x800

// Mod is a plugin holding soul gem records in insertion order.
type Mod struct {
	key     ModKey
	records []*SoulGem
	byKey   map[FormKey]*SoulGem
	nextID  uint32
}

// NewMod creates an empty plugin.
func NewMod(key ModKey) *Mod {
	return &Mod{
		key:    key,
		byKey:  make(map[FormKey]*SoulGem),
		nextID: FirstLocalID,
	}
}

// ModKey returns the plugin identity.
func (m *Mod) ModKey() ModKey {
	return m.key
}

// Len returns the number of records in the plugin.
func (m *Mod) Len() int {
	return len(m.records)
}

// SoulGems returns the records in insertion order. The slice must not be modified.
func (m *Mod) SoulGems() []*SoulGem {
	return m.records
}

// Get returns the record with the given FormKey.
func (m *Mod) Get(key FormKey) (*SoulGem, bool) {
	g, ok := m.byKey[key]
	return g, ok
}

// Add stores an existing record (new or override) as-is. A record with the same
// FormKey is replaced in place.
func (m *Mod) Add(g *SoulGem) {
	if existing, ok := m.byKey[g.FormKey]; ok {
		*existing = *g
		return
	}
	m.records = append(m.records, g)
	m.byKey[g.FormKey] = g
	if g.FormKey.ModKey == m.key && g.FormKey.ID >= m.nextID {
		m.nextID = g.FormKey.ID + 1
	}
}

// AddNew creates a record owned by this plugin with the next free local ID.
func (m *Mod) AddNew(editorID string) *SoulGem {
	g := &SoulGem{
		FormKey:  FormKey{ModKey: m.key, ID: m.nextID},
		EditorID: editorID,
	}
	m.Add(g)
	return g
}

// GetOrAddAsOverride returns this plugin's copy of src, creating it from a deep copy
// of src when the plugin does not hold one yet.
func (m *Mod) GetOrAddAsOverride(src *SoulGem) *SoulGem {
	if g, ok := m.byKey[src.FormKey]; ok {
		return g
	}
	g := src.Clone()
	m.Add(g)
	return g
}
