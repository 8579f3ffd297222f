package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"github.com/secmon-lab/gridselect/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentCellWrites bounds goroutines used by WriteRow
const maxConcurrentCellWrites = 8

// GridUseCase reads and writes select cells through the codec of their field
type GridUseCase struct {
	repo  interfaces.Repository
	idGen model.IDGenerator

	mu     sync.RWMutex
	schema *model.GridSchema
}

func NewGridUseCase(repo interfaces.Repository, schema *model.GridSchema, idGen model.IDGenerator) *GridUseCase {
	if idGen == nil {
		idGen = model.UUIDGenerator{}
	}
	return &GridUseCase{
		repo:   repo,
		idGen:  idGen,
		schema: schema,
	}
}

func (uc *GridUseCase) fieldConfig(fieldID types.FieldID) (model.FieldConfig, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.schema == nil {
		return nil, goerr.Wrap(ErrSchemaNotSet, "cannot resolve field", goerr.V(model.FieldIDKey, fieldID))
	}
	field, err := uc.schema.Field(fieldID)
	if err != nil {
		return nil, err
	}
	return field.Config, nil
}

// Schema returns a snapshot of the grid fields
func (uc *GridUseCase) Schema() []model.GridField {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.schema == nil {
		return nil
	}
	fields := make([]model.GridField, len(uc.schema.Fields))
	copy(fields, uc.schema.Fields)
	return fields
}

// FieldConfig returns the current config of a field
func (uc *GridUseCase) FieldConfig(fieldID types.FieldID) (model.FieldConfig, error) {
	return uc.fieldConfig(fieldID)
}

// SyncSchema reconciles the schema with stored configs. For a stored config of
// the same type, the schema's options and color setting are kept and stored
// options missing from the schema are appended, so options added at runtime survive.
// Any other stored config is overwritten by the schema config.
func (uc *GridUseCase) SyncSchema(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.schema == nil {
		return goerr.Wrap(ErrSchemaNotSet, "cannot sync schema")
	}

	logger := logging.From(ctx)
	for i := range uc.schema.Fields {
		field := &uc.schema.Fields[i]

		stored, err := uc.repo.FieldConfig().Get(ctx, field.ID)
		switch {
		case err == nil && stored.FieldType == field.Config.FieldType():
			storedCfg, err := model.FieldConfigFromWire(stored.FieldType, stored.Data)
			if err != nil {
				return goerr.Wrap(err, "failed to decode stored field config", goerr.V(model.FieldIDKey, field.ID))
			}
			merged := mergeFieldConfig(field.Config, storedCfg)
			if err := model.ValidateFieldConfig(field.ID, merged); err != nil {
				return goerr.Wrap(err, "merged field config is invalid")
			}
			if err := uc.putFieldConfig(ctx, field.ID, merged); err != nil {
				return err
			}
			logger.Debug("merged stored field config",
				"field_id", field.ID,
				"schema_options", len(field.Config.SelectOptions()),
				"option_count", len(merged.SelectOptions()))
			field.Config = merged
			continue

		case err == nil:
			logger.Warn("stored field type differs from schema, overwriting",
				"field_id", field.ID,
				"stored_type", stored.FieldType,
				"schema_type", field.Config.FieldType())

		case !errors.Is(err, interfaces.ErrNotFound):
			return goerr.Wrap(err, "failed to get stored field config", goerr.V(model.FieldIDKey, field.ID))
		}

		if err := uc.putFieldConfig(ctx, field.ID, field.Config); err != nil {
			return err
		}
	}

	return nil
}

// mergeFieldConfig takes options in schema order with schema names and colors,
// then appends stored options whose IDs the schema does not name
func mergeFieldConfig(schemaCfg, storedCfg model.FieldConfig) model.FieldConfig {
	opts := schemaCfg.SelectOptions().Clone()
	for _, opt := range storedCfg.SelectOptions() {
		if !opts.Contains(opt.ID) {
			opts = append(opts, opt)
		}
	}
	return schemaCfg.WithOptions(opts)
}

// validateRowID rejects row IDs that cannot be used as part of a storage key
func validateRowID(rowID string) error {
	if rowID == "" {
		return goerr.Wrap(ErrRowIDRequired, "row ID is empty")
	}
	if strings.Contains(rowID, "/") {
		return goerr.Wrap(ErrInvalidRowID, "row ID must not contain '/'", goerr.V(model.RowIDKey, rowID))
	}
	return nil
}

func (uc *GridUseCase) putFieldConfig(ctx context.Context, fieldID types.FieldID, cfg model.FieldConfig) error {
	data, err := cfg.ToWire()
	if err != nil {
		return goerr.Wrap(err, "failed to encode field config", goerr.V(model.FieldIDKey, fieldID))
	}

	if err := uc.repo.FieldConfig().Put(ctx, &interfaces.StoredFieldConfig{
		FieldID:   fieldID,
		FieldType: cfg.FieldType(),
		Data:      data,
	}); err != nil {
		return goerr.Wrap(err, "failed to store field config", goerr.V(model.FieldIDKey, fieldID))
	}
	return nil
}

// AddOption appends a new option with a generated ID to a field and stores the updated config
func (uc *GridUseCase) AddOption(ctx context.Context, fieldID types.FieldID, name string) (*model.SelectOption, error) {
	if name == "" {
		return nil, goerr.Wrap(ErrOptionNameRequired, "cannot add option", goerr.V(model.FieldIDKey, fieldID))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.schema == nil {
		return nil, goerr.Wrap(ErrSchemaNotSet, "cannot add option", goerr.V(model.FieldIDKey, fieldID))
	}
	field, err := uc.schema.Field(fieldID)
	if err != nil {
		return nil, err
	}

	opt := model.NewOption(uc.idGen, name)
	next := field.Config.WithOptions(append(field.Config.SelectOptions(), opt))
	if err := model.ValidateFieldConfig(fieldID, next); err != nil {
		return nil, goerr.Wrap(err, "generated option conflicts with existing options")
	}

	if err := uc.putFieldConfig(ctx, fieldID, next); err != nil {
		return nil, err
	}
	field.Config = next

	logging.From(ctx).Info("option added",
		"field_id", fieldID,
		"option_id", opt.ID,
		"name", name)

	return &opt, nil
}

// WriteCell normalizes raw with the field's codec and stores the result
func (uc *GridUseCase) WriteCell(ctx context.Context, rowID string, fieldID types.FieldID, raw string) (*model.CellValue, error) {
	if err := validateRowID(rowID); err != nil {
		return nil, goerr.Wrap(err, "cannot write cell", goerr.V(model.FieldIDKey, fieldID))
	}

	cfg, err := uc.fieldConfig(fieldID)
	if err != nil {
		return nil, err
	}

	value, err := cfg.SerializeCellData(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize cell data",
			goerr.V(model.RowIDKey, rowID),
			goerr.V(model.FieldIDKey, fieldID))
	}

	cell := &model.CellValue{
		RowID:   rowID,
		FieldID: fieldID,
		Value:   value,
	}
	if err := uc.repo.Cell().Save(ctx, cell); err != nil {
		return nil, goerr.Wrap(err, "failed to save cell",
			goerr.V(model.RowIDKey, rowID),
			goerr.V(model.FieldIDKey, fieldID))
	}

	if value != raw {
		logging.From(ctx).Debug("cell value collapsed",
			"row_id", rowID,
			"field_id", fieldID,
			"raw", raw,
			"stored", value)
	}

	return cell, nil
}

// WriteRow writes several cells of one row concurrently. The first failure cancels the rest.
func (uc *GridUseCase) WriteRow(ctx context.Context, rowID string, values map[types.FieldID]string) error {
	if err := validateRowID(rowID); err != nil {
		return goerr.Wrap(err, "cannot write row")
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentCellWrites)

	for fieldID, raw := range values {
		eg.Go(func() error {
			_, err := uc.WriteCell(ctx, rowID, fieldID, raw)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "failed to write row", goerr.V(model.RowIDKey, rowID))
	}
	return nil
}

// ReadCell returns the display value of a stored cell
func (uc *GridUseCase) ReadCell(ctx context.Context, rowID string, fieldID types.FieldID) (string, error) {
	cfg, err := uc.fieldConfig(fieldID)
	if err != nil {
		return "", err
	}

	cell, err := uc.repo.Cell().Get(ctx, rowID, fieldID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get cell",
			goerr.V(model.RowIDKey, rowID),
			goerr.V(model.FieldIDKey, fieldID))
	}

	return cfg.DeserializeCellData(cell.Value), nil
}

// ReadRow returns display values of all stored cells of a row.
// Cells of fields no longer in the schema are skipped.
func (uc *GridUseCase) ReadRow(ctx context.Context, rowID string) (map[types.FieldID]string, error) {
	cells, err := uc.repo.Cell().GetByRowID(ctx, rowID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get row cells", goerr.V(model.RowIDKey, rowID))
	}

	return uc.displayRow(cells)
}

// displayRow deserializes cells, skipping fields no longer in the schema
func (uc *GridUseCase) displayRow(cells []model.CellValue) (map[types.FieldID]string, error) {
	result := make(map[types.FieldID]string, len(cells))
	for _, cell := range cells {
		cfg, err := uc.fieldConfig(cell.FieldID)
		if err != nil {
			if errors.Is(err, model.ErrFieldNotFound) {
				continue
			}
			return nil, err
		}
		result[cell.FieldID] = cfg.DeserializeCellData(cell.Value)
	}

	return result, nil
}

// ReadRows returns display values of several rows keyed by row ID.
// Requested rows without stored cells map to an empty row.
func (uc *GridUseCase) ReadRows(ctx context.Context, rowIDs []string) (map[string]map[types.FieldID]string, error) {
	rows, err := uc.repo.Cell().GetByRowIDs(ctx, rowIDs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get cells of rows", goerr.V("row_count", len(rowIDs)))
	}

	result := make(map[string]map[types.FieldID]string, len(rowIDs))
	for _, rowID := range rowIDs {
		row, err := uc.displayRow(rows[rowID])
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read row", goerr.V(model.RowIDKey, rowID))
		}
		result[rowID] = row
	}
	return result, nil
}

// DeleteRow removes all stored cells of a row
func (uc *GridUseCase) DeleteRow(ctx context.Context, rowID string) error {
	if err := uc.repo.Cell().DeleteByRowID(ctx, rowID); err != nil {
		return goerr.Wrap(err, "failed to delete row", goerr.V(model.RowIDKey, rowID))
	}
	return nil
}
