package memory

import (
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	cell        *cellRepository
	fieldConfig *fieldConfigRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		cell:        newCellRepository(),
		fieldConfig: newFieldConfigRepository(),
	}
}

func (m *Memory) Cell() interfaces.CellRepository {
	return m.cell
}

func (m *Memory) FieldConfig() interfaces.FieldConfigRepository {
	return m.fieldConfig
}

func (m *Memory) Close() error {
	return nil
}
