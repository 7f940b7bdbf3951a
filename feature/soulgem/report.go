package soulgem

// ActionType is the kind of change a run made to the output plugin.
type ActionType string

const (
	// ActionCreate adds a synthesized variant to the output plugin.
	ActionCreate ActionType = "create"
	// ActionRelink overrides an existing variant to link it to its empty gem.
	ActionRelink ActionType = "relink"
)

// Action is one change made to the output plugin.
type Action struct {
	// Type specifies the change.
	Type ActionType `json:"type"`

	// FormKey is the record created or overridden.
	FormKey string `json:"form_key"`

	// Group is the name of the family the record belongs to.
	Group string `json:"group"`

	// Level is the contained soul of the record.
	Level string `json:"level"`

	// Value is the record value after the run.
	Value uint32 `json:"value"`
}

// Report summarizes a generator run.
type Report struct {
	// Groups is the number of families found.
	Groups int `json:"groups"`

	// Emitted counts the families written to the configuration.
	Emitted int `json:"emitted"`

	// Skipped counts the families rejected by validation.
	Skipped int `json:"skipped"`

	// Created counts synthesized variants.
	Created int `json:"created"`

	// Relinked counts existing variants overridden to fix their link.
	Relinked int `json:"relinked"`

	// Actions lists every change in the order it was made.
	Actions []Action `json:"actions"`
}

// Changed reports whether the run modified the output plugin.
func (r Report) Changed() bool {
	return r.Created > 0 || r.Relinked > 0
}

func (r *Report) record(a Action) {
	switch a.Type {
	case ActionCreate:
		r.Created++
	case ActionRelink:
		r.Relinked++
	}
	r.Actions = append(r.Actions, a)
}
