package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern matches valid ID formats: alphanumeric with hyphens/underscores
var idPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ProgramID represents a validated program identifier.
type ProgramID struct {
	value string
}

// NewProgramID creates a new ProgramID from a string value.
// Returns an error if the value is invalid.
func NewProgramID(value string) (ProgramID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ProgramID{}, fmt.Errorf("program ID cannot be empty")
	}
	if !idPattern.MatchString(value) {
		return ProgramID{}, fmt.Errorf("invalid program ID format: %s", value)
	}
	return ProgramID{value: value}, nil
}

// MustProgramID creates a ProgramID or panics if invalid. Use only in tests.
func MustProgramID(value string) ProgramID {
	id, err := NewProgramID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation of the ProgramID.
func (id ProgramID) String() string {
	return id.value
}

// IsZero returns true if the ProgramID is empty.
func (id ProgramID) IsZero() bool {
	return id.value == ""
}

// Equals checks if two ProgramIDs are equal.
func (id ProgramID) Equals(other ProgramID) bool {
	return id.value == other.value
}

// ActivityID represents a validated activity identifier.
type ActivityID struct {
	value string
}

// NewActivityID creates a new ActivityID from a string value.
func NewActivityID(value string) (ActivityID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ActivityID{}, fmt.Errorf("activity ID cannot be empty")
	}
	if !idPattern.MatchString(value) {
		return ActivityID{}, fmt.Errorf("invalid activity ID format: %s", value)
	}
	return ActivityID{value: value}, nil
}

// MustActivityID creates an ActivityID or panics if invalid. Use only in tests.
func MustActivityID(value string) ActivityID {
	id, err := NewActivityID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation of the ActivityID.
func (id ActivityID) String() string {
	return id.value
}

// IsZero returns true if the ActivityID is empty.
func (id ActivityID) IsZero() bool {
	return id.value == ""
}

// Equals checks if two ActivityIDs are equal.
func (id ActivityID) Equals(other ActivityID) bool {
	return id.value == other.value
}
