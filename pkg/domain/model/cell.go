package model

import (
	"strings"
	"time"

	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

// CellSeparator joins option IDs in a stored cell value
const CellSeparator = ","

// CellCodec converts cell values between their raw input and stored forms
type CellCodec interface {
	// SerializeCellData normalizes a raw value before it is stored
	SerializeCellData(raw string) (string, error)
	// DeserializeCellData returns the value to display for a stored cell
	DeserializeCellData(stored string) string
}

// Normalize collapses a raw comma-joined option ID list according to cardinality.
// Multi returns raw unchanged. Single keeps everything before the first separator,
// so "" stays "" and "a,b" becomes "a". Elements are not trimmed or checked
// against the option set.
func Normalize(raw string, cardinality types.Cardinality) string {
	if cardinality == types.Multi {
		return raw
	}
	first, _, _ := strings.Cut(raw, CellSeparator)
	return first
}

// CellValue is a stored select cell of a grid row
type CellValue struct {
	RowID     string
	FieldID   types.FieldID
	Value     string
	UpdatedAt time.Time
}

// OptionIDs splits the stored value into option IDs. An empty value has none.
func (c CellValue) OptionIDs() []types.OptionID {
	if c.Value == "" {
		return nil
	}
	parts := strings.Split(c.Value, CellSeparator)
	ids := make([]types.OptionID, len(parts))
	for i, p := range parts {
		ids[i] = types.OptionID(p)
	}
	return ids
}
