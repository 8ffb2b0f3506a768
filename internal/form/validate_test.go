package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filledState returns a state with every required field set to value.
func filledState(t *testing.T, value string) *State {
	t.Helper()
	s := NewState()
	for _, name := range RequiredFields() {
		require.True(t, s.Apply(name, value))
	}
	return s
}

func TestValidate_AllZerosIsValid(t *testing.T) {
	s := filledState(t, "0")

	result := Validate(s)

	assert.True(t, result.OK(), "zero is a value, not an absence: %v", result)
}

func TestValidate_FreshStateFlagsEveryRequiredField(t *testing.T) {
	s := NewState()

	result := Validate(s)

	assert.Len(t, result, len(RequiredFields()))
	for _, name := range RequiredFields() {
		assert.Equal(t, RequiredReason, result[name])
	}
}

func TestValidate_SingleMissingField(t *testing.T) {
	s := filledState(t, "10")
	require.True(t, s.Apply("age", ""))

	result := Validate(s)

	require.Len(t, result, 1)
	assert.Equal(t, RequiredReason, result["age"])
}

func TestValidate_CountMatchesEmptyRequiredFields(t *testing.T) {
	s := filledState(t, "3")
	cleared := []string{"fifties", "economy_rate", "pressure_handling_score"}
	for _, name := range cleared {
		require.True(t, s.Apply(name, ""))
	}

	result := Validate(s)

	require.Len(t, result, len(cleared))
	for _, name := range cleared {
		assert.Contains(t, result, name)
	}
}

func TestValidate_OptionalFieldsNeverFlagged(t *testing.T) {
	s := filledState(t, "5")
	require.True(t, s.Apply("player_name", ""))

	result := Validate(s)

	assert.True(t, result.OK())
}

func TestValidate_RebuiltEachPass(t *testing.T) {
	s := NewState()
	first := Validate(s)
	require.NotEmpty(t, first)

	for _, name := range RequiredFields() {
		require.True(t, s.Apply(name, "1"))
	}
	second := Validate(s)

	assert.True(t, second.OK())
	// The first result is a snapshot of its own pass, untouched by the second.
	assert.Len(t, first, len(RequiredFields()))
}

func TestValidate_OutOfRangeStillValid(t *testing.T) {
	// Declared max hints are not enforced; only presence is checked.
	s := filledState(t, "1")
	require.True(t, s.Apply("boundary_percentage", "250"))

	result := Validate(s)

	assert.True(t, result.OK())
}
