package interfaces

import (
	"context"

	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

// StoredFieldConfig is a field config in its wire form
type StoredFieldConfig struct {
	FieldID   types.FieldID
	FieldType types.FieldType
	Data      []byte
}

// FieldConfigRepository persists field configs as opaque wire bytes
type FieldConfigRepository interface {
	Put(ctx context.Context, cfg *StoredFieldConfig) error
	// Get returns an error wrapping ErrNotFound if nothing is stored for fieldID
	Get(ctx context.Context, fieldID types.FieldID) (*StoredFieldConfig, error)
}
