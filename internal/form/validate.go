package form

// RequiredReason is the violation text recorded for a missing required field.
const RequiredReason = "Required"

// Result maps field names to violation reasons. An empty result means the
// form is submittable. It is rebuilt in full on every validation pass.
type Result map[string]string

// OK reports whether the validated state had no violations.
func (r Result) OK() bool {
	return len(r) == 0
}

// Validate checks every required field of the state. A field is missing iff
// its value is the empty string: "0" is a legitimate statistic and must not
// be flagged, so presence is judged by representation, never by magnitude.
// Range and enum-membership violations are not validation failures.
func Validate(s *State) Result {
	result := Result{}
	for _, name := range RequiredFields() {
		if s.Get(name) == "" {
			result[name] = RequiredReason
		}
	}
	return result
}
