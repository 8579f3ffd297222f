package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

// FieldConfig is the typed configuration of a select field. Implementations are
// immutable snapshots; WithOptions returns a new value.
type FieldConfig interface {
	CellCodec

	FieldType() types.FieldType
	Cardinality() types.Cardinality
	SelectOptions() Options
	ColorDisabled() bool
	WithOptions(opts Options) FieldConfig

	// ToWire encodes the config into its stored byte form
	ToWire() ([]byte, error)
}

// selectWire is the stored JSON form shared by both select configs
type selectWire struct {
	Options      []SelectOption `json:"options"`
	DisableColor bool           `json:"disable_color"`
}

func encodeWire(fieldType types.FieldType, opts Options, disableColor bool) ([]byte, error) {
	w := selectWire{
		Options:      opts,
		DisableColor: disableColor,
	}
	if w.Options == nil {
		w.Options = []SelectOption{}
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode field config", goerr.V(FieldTypeKey, fieldType))
	}
	return data, nil
}

func decodeWire(fieldType types.FieldType, data []byte) (*selectWire, error) {
	var w selectWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, goerr.Wrap(ErrInvalidWire, "failed to decode field config",
			goerr.V(FieldTypeKey, fieldType),
			goerr.V("cause", err.Error()))
	}
	return &w, nil
}

// SingleSelectFieldConfig allows at most one selected option per cell
type SingleSelectFieldConfig struct {
	Options      Options
	DisableColor bool
}

var _ FieldConfig = (*SingleSelectFieldConfig)(nil)

func (c *SingleSelectFieldConfig) FieldType() types.FieldType {
	return types.FieldTypeSelect
}

func (c *SingleSelectFieldConfig) Cardinality() types.Cardinality {
	return types.Single
}

func (c *SingleSelectFieldConfig) SelectOptions() Options {
	return c.Options.Clone()
}

func (c *SingleSelectFieldConfig) ColorDisabled() bool {
	return c.DisableColor
}

func (c *SingleSelectFieldConfig) WithOptions(opts Options) FieldConfig {
	return &SingleSelectFieldConfig{Options: opts.Clone(), DisableColor: c.DisableColor}
}

func (c *SingleSelectFieldConfig) ToWire() ([]byte, error) {
	return encodeWire(c.FieldType(), c.Options, c.DisableColor)
}

// SerializeCellData keeps only the first option ID of raw. It never fails.
func (c *SingleSelectFieldConfig) SerializeCellData(raw string) (string, error) {
	return Normalize(raw, types.Single), nil
}

func (c *SingleSelectFieldConfig) DeserializeCellData(stored string) string {
	return stored
}

// SingleSelectFromWire decodes a single-select config from its stored form
func SingleSelectFromWire(data []byte) (*SingleSelectFieldConfig, error) {
	w, err := decodeWire(types.FieldTypeSelect, data)
	if err != nil {
		return nil, err
	}
	return &SingleSelectFieldConfig{Options: w.Options, DisableColor: w.DisableColor}, nil
}

// MultiSelectFieldConfig allows zero or more selected options per cell
type MultiSelectFieldConfig struct {
	Options      Options
	DisableColor bool
}

var _ FieldConfig = (*MultiSelectFieldConfig)(nil)

func (c *MultiSelectFieldConfig) FieldType() types.FieldType {
	return types.FieldTypeMultiSelect
}

func (c *MultiSelectFieldConfig) Cardinality() types.Cardinality {
	return types.Multi
}

func (c *MultiSelectFieldConfig) SelectOptions() Options {
	return c.Options.Clone()
}

func (c *MultiSelectFieldConfig) ColorDisabled() bool {
	return c.DisableColor
}

func (c *MultiSelectFieldConfig) WithOptions(opts Options) FieldConfig {
	return &MultiSelectFieldConfig{Options: opts.Clone(), DisableColor: c.DisableColor}
}

func (c *MultiSelectFieldConfig) ToWire() ([]byte, error) {
	return encodeWire(c.FieldType(), c.Options, c.DisableColor)
}

// SerializeCellData stores raw as is; the comma-joined list is already canonical.
func (c *MultiSelectFieldConfig) SerializeCellData(raw string) (string, error) {
	return Normalize(raw, types.Multi), nil
}

func (c *MultiSelectFieldConfig) DeserializeCellData(stored string) string {
	return stored
}

// MultiSelectFromWire decodes a multi-select config from its stored form
func MultiSelectFromWire(data []byte) (*MultiSelectFieldConfig, error) {
	w, err := decodeWire(types.FieldTypeMultiSelect, data)
	if err != nil {
		return nil, err
	}
	return &MultiSelectFieldConfig{Options: w.Options, DisableColor: w.DisableColor}, nil
}

// NewFieldConfig builds a config of the given field type
func NewFieldConfig(fieldType types.FieldType, opts Options, disableColor bool) (FieldConfig, error) {
	switch fieldType {
	case types.FieldTypeSelect:
		return &SingleSelectFieldConfig{Options: opts.Clone(), DisableColor: disableColor}, nil
	case types.FieldTypeMultiSelect:
		return &MultiSelectFieldConfig{Options: opts.Clone(), DisableColor: disableColor}, nil
	default:
		return nil, goerr.Wrap(ErrUnknownFieldType, "cannot build field config",
			goerr.V(FieldTypeKey, fieldType))
	}
}

// FieldConfigFromWire decodes the stored form of a config of the given field type
func FieldConfigFromWire(fieldType types.FieldType, data []byte) (FieldConfig, error) {
	switch fieldType {
	case types.FieldTypeSelect:
		return SingleSelectFromWire(data)
	case types.FieldTypeMultiSelect:
		return MultiSelectFromWire(data)
	default:
		return nil, goerr.Wrap(ErrUnknownFieldType, "cannot decode field config",
			goerr.V(FieldTypeKey, fieldType))
	}
}
