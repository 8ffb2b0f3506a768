package form

import "strconv"

// State is the live mapping of every registry field to its current value.
// Invariant: every registry field has exactly one entry at all times. All
// mutation goes through Apply (per-keystroke, guarded) or Replace (wholesale,
// trusted source).
type State struct {
	values map[string]string
}

// NewState creates a fully-keyed state holding registry defaults.
func NewState() *State {
	return &State{values: Defaults()}
}

// Get returns the current value of a field. Unknown names read as empty.
func (s *State) Get(name string) string {
	return s.values[name]
}

// Apply is the input guard: it records a value change unless the change
// violates the field's domain. Negative values on numeric fields are dropped
// silently, leaving the stored value unchanged. The empty string is the
// canonical "unset" and is always accepted, as is any value a numeric parse
// cannot make sense of - upper bounds and enum membership are deliberately
// not checked here. Returns false when the change was rejected.
func (s *State) Apply(name, raw string) bool {
	if _, ok := index[name]; !ok {
		return false
	}
	if IsNumeric(name) && raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v < 0 {
			return false
		}
	}
	s.values[name] = raw
	return true
}

// Replace overwrites the whole state from an external record (demo data or a
// CSV row), bypassing the guard. Missing keys fall back to registry defaults
// so the fully-keyed invariant survives a sparse record; unknown keys are
// dropped.
func (s *State) Replace(record map[string]string) {
	next := Defaults()
	for name, value := range record {
		if _, ok := index[name]; ok {
			next[name] = value
		}
	}
	s.values = next
}

// Reset restores every field to its registry default.
func (s *State) Reset() {
	s.values = Defaults()
}

// Snapshot returns a copy of all current values, suitable as a request
// payload or for inspection without aliasing the live state.
func (s *State) Snapshot() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
