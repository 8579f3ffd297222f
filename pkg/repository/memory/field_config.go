package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

type fieldConfigRepository struct {
	mu      sync.RWMutex
	configs map[types.FieldID]*interfaces.StoredFieldConfig
}

func newFieldConfigRepository() *fieldConfigRepository {
	return &fieldConfigRepository{
		configs: make(map[types.FieldID]*interfaces.StoredFieldConfig),
	}
}

func copyStoredFieldConfig(cfg *interfaces.StoredFieldConfig) *interfaces.StoredFieldConfig {
	data := make([]byte, len(cfg.Data))
	copy(data, cfg.Data)
	return &interfaces.StoredFieldConfig{
		FieldID:   cfg.FieldID,
		FieldType: cfg.FieldType,
		Data:      data,
	}
}

func (r *fieldConfigRepository) Put(ctx context.Context, cfg *interfaces.StoredFieldConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.configs[cfg.FieldID] = copyStoredFieldConfig(cfg)
	return nil
}

func (r *fieldConfigRepository) Get(ctx context.Context, fieldID types.FieldID) (*interfaces.StoredFieldConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[fieldID]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "field config not found", goerr.V(model.FieldIDKey, fieldID))
	}
	return copyStoredFieldConfig(cfg), nil
}
