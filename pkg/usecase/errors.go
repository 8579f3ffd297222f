package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrRowIDRequired      = goerr.New("row ID is required")
	ErrInvalidRowID       = goerr.New("invalid row ID")
	ErrOptionNameRequired = goerr.New("option name is required")
	ErrSchemaNotSet       = goerr.New("grid schema is not configured")
)
