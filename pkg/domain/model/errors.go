package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrCodec is reserved for write-path cell failures. No current codec returns it.
	ErrCodec            = goerr.New("cell codec error")
	ErrInvalidWire      = goerr.New("invalid field config wire data")
	ErrUnknownFieldType = goerr.New("unknown field type")
	ErrFieldNotFound    = goerr.New("field not found")
)

// Context keys for error values
const (
	FieldIDKey   = "field_id"
	FieldTypeKey = "field_type"
	RowIDKey     = "row_id"
	OptionIDKey  = "option_id"
)
