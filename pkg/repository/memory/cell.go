package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

type cellKey struct {
	RowID   string
	FieldID types.FieldID
}

type cellRepository struct {
	mu    sync.RWMutex
	cells map[cellKey]model.CellValue
}

func newCellRepository() *cellRepository {
	return &cellRepository{
		cells: make(map[cellKey]model.CellValue),
	}
}

func (r *cellRepository) Get(ctx context.Context, rowID string, fieldID types.FieldID) (*model.CellValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cell, ok := r.cells[cellKey{RowID: rowID, FieldID: fieldID}]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "cell not found",
			goerr.V(model.RowIDKey, rowID),
			goerr.V(model.FieldIDKey, fieldID))
	}
	return &cell, nil
}

func (r *cellRepository) GetByRowID(ctx context.Context, rowID string) ([]model.CellValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cells := make([]model.CellValue, 0)
	for key, cell := range r.cells {
		if key.RowID == rowID {
			cells = append(cells, cell)
		}
	}
	sortCells(cells)

	return cells, nil
}

func (r *cellRepository) GetByRowIDs(ctx context.Context, rowIDs []string) (map[string][]model.CellValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]model.CellValue, len(rowIDs))
	for _, rowID := range rowIDs {
		result[rowID] = make([]model.CellValue, 0)
	}

	for key, cell := range r.cells {
		if cells, ok := result[key.RowID]; ok {
			result[key.RowID] = append(cells, cell)
		}
	}
	for _, cells := range result {
		sortCells(cells)
	}

	return result, nil
}

func (r *cellRepository) Save(ctx context.Context, cell *model.CellValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *cell
	saved.UpdatedAt = time.Now().UTC()

	r.cells[cellKey{RowID: cell.RowID, FieldID: cell.FieldID}] = saved
	return nil
}

func (r *cellRepository) DeleteByRowID(ctx context.Context, rowID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.cells {
		if key.RowID == rowID {
			delete(r.cells, key)
		}
	}

	return nil
}

// sortCells orders cells by field ID, matching the Firestore query order
func sortCells(cells []model.CellValue) {
	slices.SortFunc(cells, func(a, b model.CellValue) int {
		return cmp.Compare(a.FieldID, b.FieldID)
	})
}
