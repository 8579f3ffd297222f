package interfaces

import (
	"context"

	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

// CellRepository defines the interface for stored select cell values
type CellRepository interface {
	// Get retrieves a single cell. Returns an error wrapping ErrNotFound if the cell is not stored.
	Get(ctx context.Context, rowID string, fieldID types.FieldID) (*model.CellValue, error)

	// GetByRowID retrieves all cells of a row
	GetByRowID(ctx context.Context, rowID string) ([]model.CellValue, error)

	// GetByRowIDs retrieves cells of multiple rows.
	// Every requested row ID is present in the result, possibly with no cells.
	GetByRowIDs(ctx context.Context, rowIDs []string) (map[string][]model.CellValue, error)

	// Save creates or updates a cell.
	// If a cell with the same RowID and FieldID exists, it will be replaced
	Save(ctx context.Context, cell *model.CellValue) error

	// DeleteByRowID deletes all cells of a row
	DeleteByRowID(ctx context.Context, rowID string) error
}
