package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const fieldConfigsCollection = "grid_field_configs"

type fieldConfigDocument struct {
	FieldID   string    `firestore:"field_id"`
	FieldType string    `firestore:"field_type"`
	Data      []byte    `firestore:"data"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type fieldConfigRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newFieldConfigRepository(client *firestore.Client) *fieldConfigRepository {
	return &fieldConfigRepository{
		client: client,
	}
}

func (r *fieldConfigRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionName(r.collectionPrefix, fieldConfigsCollection))
}

func (r *fieldConfigRepository) Put(ctx context.Context, cfg *interfaces.StoredFieldConfig) error {
	doc := &fieldConfigDocument{
		FieldID:   string(cfg.FieldID),
		FieldType: string(cfg.FieldType),
		Data:      cfg.Data,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := r.collection().Doc(string(cfg.FieldID)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put field config", goerr.V(model.FieldIDKey, cfg.FieldID))
	}
	return nil
}

func (r *fieldConfigRepository) Get(ctx context.Context, fieldID types.FieldID) (*interfaces.StoredFieldConfig, error) {
	doc, err := r.collection().Doc(string(fieldID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "field config not found", goerr.V(model.FieldIDKey, fieldID))
		}
		return nil, goerr.Wrap(err, "failed to get field config", goerr.V(model.FieldIDKey, fieldID))
	}

	var cfgDoc fieldConfigDocument
	if err := doc.DataTo(&cfgDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode field config", goerr.V(model.FieldIDKey, fieldID))
	}

	return &interfaces.StoredFieldConfig{
		FieldID:   types.FieldID(cfgDoc.FieldID),
		FieldType: types.FieldType(cfgDoc.FieldType),
		Data:      cfgDoc.Data,
	}, nil
}
