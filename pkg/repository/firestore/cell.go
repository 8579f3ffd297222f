package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CellsCollection is the base name of the cell collection
const CellsCollection = "grid_cells"

type cellDocument struct {
	RowID     string    `firestore:"row_id"`
	FieldID   string    `firestore:"field_id"`
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d *cellDocument) toModel() model.CellValue {
	return model.CellValue{
		RowID:     d.RowID,
		FieldID:   types.FieldID(d.FieldID),
		Value:     d.Value,
		UpdatedAt: d.UpdatedAt,
	}
}

type cellRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCellRepository(client *firestore.Client) *cellRepository {
	return &cellRepository{
		client: client,
	}
}

func (r *cellRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionName(r.collectionPrefix, CellsCollection))
}

func (r *cellRepository) docID(rowID string, fieldID types.FieldID) string {
	return fmt.Sprintf("%s_%s", rowID, fieldID)
}

func (r *cellRepository) Get(ctx context.Context, rowID string, fieldID types.FieldID) (*model.CellValue, error) {
	doc, err := r.collection().Doc(r.docID(rowID, fieldID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "cell not found",
				goerr.V(model.RowIDKey, rowID),
				goerr.V(model.FieldIDKey, fieldID))
		}
		return nil, goerr.Wrap(err, "failed to get cell",
			goerr.V(model.RowIDKey, rowID),
			goerr.V(model.FieldIDKey, fieldID))
	}

	var cellDoc cellDocument
	if err := doc.DataTo(&cellDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode cell", goerr.V("doc_id", doc.Ref.ID))
	}

	cell := cellDoc.toModel()
	return &cell, nil
}

// GetByRowID requires the composite index (row_id ASC, field_id ASC) created by the migrate command
func (r *cellRepository) GetByRowID(ctx context.Context, rowID string) ([]model.CellValue, error) {
	iter := r.collection().
		Where("row_id", "==", rowID).
		OrderBy("field_id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	cells := make([]model.CellValue, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate cells", goerr.V(model.RowIDKey, rowID))
		}

		var cellDoc cellDocument
		if err := docSnap.DataTo(&cellDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode cell", goerr.V("doc_id", docSnap.Ref.ID))
		}

		cells = append(cells, cellDoc.toModel())
	}

	return cells, nil
}

// GetByRowIDs runs one GetByRowID query per row and shares its composite index
func (r *cellRepository) GetByRowIDs(ctx context.Context, rowIDs []string) (map[string][]model.CellValue, error) {
	result := make(map[string][]model.CellValue, len(rowIDs))

	for _, rowID := range rowIDs {
		cells, err := r.GetByRowID(ctx, rowID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get cells by row", goerr.V(model.RowIDKey, rowID))
		}
		result[rowID] = cells
	}

	return result, nil
}

func (r *cellRepository) Save(ctx context.Context, cell *model.CellValue) error {
	doc := &cellDocument{
		RowID:     cell.RowID,
		FieldID:   string(cell.FieldID),
		Value:     cell.Value,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := r.collection().Doc(r.docID(cell.RowID, cell.FieldID)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save cell",
			goerr.V(model.RowIDKey, cell.RowID),
			goerr.V(model.FieldIDKey, cell.FieldID))
	}

	return nil
}

func (r *cellRepository) DeleteByRowID(ctx context.Context, rowID string) error {
	iter := r.collection().
		Where("row_id", "==", rowID).
		Documents(ctx)
	defer iter.Stop()

	var docRefs []*firestore.DocumentRef
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate cells for deletion", goerr.V(model.RowIDKey, rowID))
		}
		docRefs = append(docRefs, docSnap.Ref)
	}

	for _, docRef := range docRefs {
		if _, err := docRef.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete cell",
				goerr.V(model.RowIDKey, rowID),
				goerr.V("doc_id", docRef.ID))
		}
	}

	return nil
}
