package usecase

import (
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
)

type UseCases struct {
	repo   interfaces.Repository
	schema *model.GridSchema
	idGen  model.IDGenerator
	Grid   *GridUseCase
}

type Option func(*UseCases)

func WithSchema(schema *model.GridSchema) Option {
	return func(uc *UseCases) {
		uc.schema = schema
	}
}

// WithIDGenerator replaces the UUID generator used for new options
func WithIDGenerator(gen model.IDGenerator) Option {
	return func(uc *UseCases) {
		uc.idGen = gen
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:  repo,
		idGen: model.UUIDGenerator{},
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Grid = NewGridUseCase(repo, uc.schema, uc.idGen)

	return uc
}
