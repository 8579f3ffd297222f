package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// FieldID represents the unique identifier for a grid field
type FieldID string

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the FieldID is valid
func (f FieldID) Validate() error {
	if f == "" {
		return goerr.New("field ID cannot be empty")
	}
	if !idPattern.MatchString(string(f)) {
		return goerr.New("field ID must be lowercase alphanumeric with hyphens", goerr.V("id", f))
	}
	return nil
}

// String returns the string representation of FieldID
func (f FieldID) String() string {
	return string(f)
}

// String returns the string representation of OptionID
func (o OptionID) String() string {
	return string(o)
}
