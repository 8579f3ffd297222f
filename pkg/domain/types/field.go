package types

// OptionID identifies a select option within a field
type OptionID string

// FieldType represents the type of a select field
type FieldType string

const (
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multi-select"
)

// AllFieldTypes returns all valid field types
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeSelect,
		FieldTypeMultiSelect,
	}
}

// IsValid checks if the field type is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeSelect, FieldTypeMultiSelect:
		return true
	default:
		return false
	}
}

// String returns the string representation of the field type
func (t FieldType) String() string {
	return string(t)
}

// Cardinality returns how many options a cell of this field type may hold.
// Unknown types are treated as Single.
func (t FieldType) Cardinality() Cardinality {
	if t == FieldTypeMultiSelect {
		return Multi
	}
	return Single
}

// Cardinality tells whether a field permits one or many selected options per cell
type Cardinality int

const (
	// Single allows at most one selected option per cell
	Single Cardinality = iota
	// Multi allows zero or more selected options per cell
	Multi
)

func (c Cardinality) String() string {
	switch c {
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown"
	}
}
