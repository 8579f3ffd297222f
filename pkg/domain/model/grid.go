package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

// GridField is a select column of a grid
type GridField struct {
	ID     types.FieldID
	Name   string
	Config FieldConfig
}

// GridSchema holds the select fields of a grid in display order
type GridSchema struct {
	Fields []GridField
}

// Field returns the field with the given ID
func (s *GridSchema) Field(id types.FieldID) (*GridField, error) {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i], nil
		}
	}
	return nil, goerr.Wrap(ErrFieldNotFound, "field is not defined in grid schema", goerr.V(FieldIDKey, id))
}
