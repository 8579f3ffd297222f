package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

// Option set errors
var (
	ErrEmptyOptionID     = goerr.New("option ID is empty")
	ErrDuplicateOptionID = goerr.New("duplicate option ID")
)

// ValidateFieldConfig checks the option set of a field config.
// Cell values are not inspected.
func ValidateFieldConfig(fieldID types.FieldID, cfg FieldConfig) error {
	if cfg == nil {
		return goerr.Wrap(ErrUnknownFieldType, "field config is nil", goerr.V(FieldIDKey, fieldID))
	}
	if !cfg.FieldType().IsValid() {
		return goerr.Wrap(ErrUnknownFieldType, "unsupported field type",
			goerr.V(FieldIDKey, fieldID),
			goerr.V(FieldTypeKey, cfg.FieldType()))
	}

	seen := make(map[types.OptionID]bool)
	for i, opt := range cfg.SelectOptions() {
		if opt.ID == "" {
			return goerr.Wrap(ErrEmptyOptionID, "option has no ID",
				goerr.V(FieldIDKey, fieldID),
				goerr.V("option_index", i))
		}
		if seen[opt.ID] {
			return goerr.Wrap(ErrDuplicateOptionID, "option ID is used twice",
				goerr.V(FieldIDKey, fieldID),
				goerr.V(OptionIDKey, opt.ID))
		}
		seen[opt.ID] = true
	}

	return nil
}
