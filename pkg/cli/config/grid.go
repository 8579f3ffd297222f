package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// GridFile is the TOML representation of a grid schema
type GridFile struct {
	Fields []FieldEntry `toml:"fields"`
}

// FieldEntry is a select field in the grid file
type FieldEntry struct {
	ID           string        `toml:"id"`
	Name         string        `toml:"name"`
	Type         string        `toml:"type"`
	DisableColor bool          `toml:"disable_color"`
	Options      []OptionEntry `toml:"options"`
}

// OptionEntry is an option of a select field in the grid file
type OptionEntry struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Validate checks the field entry and its options
func (f *FieldEntry) Validate() error {
	if err := types.FieldID(f.ID).Validate(); err != nil {
		return goerr.Wrap(ErrInvalidFieldID, err.Error(), goerr.V(FieldIDKey, f.ID))
	}
	if f.Name == "" {
		return goerr.Wrap(ErrMissingName, "field name is required", goerr.V(FieldIDKey, f.ID))
	}
	if !types.FieldType(f.Type).IsValid() {
		return goerr.Wrap(ErrInvalidFieldType, "field type must be select or multi-select",
			goerr.V(FieldIDKey, f.ID),
			goerr.V(FieldTypeKey, f.Type))
	}

	optionIDs := make(map[string]bool)
	for i, opt := range f.Options {
		if opt.ID == "" {
			return goerr.Wrap(ErrMissingOptionID, "option ID is required",
				goerr.V(FieldIDKey, f.ID),
				goerr.V(OptionIndexKey, i))
		}
		if opt.Name == "" {
			return goerr.Wrap(ErrMissingName, "option name is required",
				goerr.V(FieldIDKey, f.ID),
				goerr.V(OptionIDKey, opt.ID))
		}
		if optionIDs[opt.ID] {
			return goerr.Wrap(ErrDuplicateOptionID, "option ID is used twice",
				goerr.V(FieldIDKey, f.ID),
				goerr.V(OptionIDKey, opt.ID))
		}
		optionIDs[opt.ID] = true
	}

	return nil
}

// Validate checks every field and rejects duplicate field IDs
func (g *GridFile) Validate() error {
	fieldIDs := make(map[string]bool)
	for i := range g.Fields {
		f := &g.Fields[i]
		if err := f.Validate(); err != nil {
			return goerr.Wrap(err, "invalid field", goerr.V(FieldIndexKey, i))
		}
		if fieldIDs[f.ID] {
			return goerr.Wrap(ErrDuplicateFieldID, "field ID is used twice", goerr.V(FieldIDKey, f.ID))
		}
		fieldIDs[f.ID] = true
	}
	return nil
}

// ToDomain converts the file into a grid schema
func (g *GridFile) ToDomain() (*model.GridSchema, error) {
	schema := &model.GridSchema{
		Fields: make([]model.GridField, 0, len(g.Fields)),
	}

	for _, f := range g.Fields {
		opts := make(model.Options, len(f.Options))
		for i, opt := range f.Options {
			opts[i] = model.SelectOption{
				ID:    types.OptionID(opt.ID),
				Name:  opt.Name,
				Color: opt.Color,
			}
		}

		cfg, err := model.NewFieldConfig(types.FieldType(f.Type), opts, f.DisableColor)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build field config", goerr.V(FieldIDKey, f.ID))
		}
		if err := model.ValidateFieldConfig(types.FieldID(f.ID), cfg); err != nil {
			return nil, goerr.Wrap(err, "invalid field config", goerr.V(FieldIDKey, f.ID))
		}

		schema.Fields = append(schema.Fields, model.GridField{
			ID:     types.FieldID(f.ID),
			Name:   f.Name,
			Config: cfg,
		})
	}

	return schema, nil
}

// ParseGridSchema decodes and validates a TOML grid schema
func ParseGridSchema(data []byte) (*model.GridSchema, error) {
	var file GridFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML grid schema", goerr.V("cause", err.Error()))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "grid schema validation failed")
	}

	return file.ToDomain()
}

// LoadGridSchema loads the grid schema from a TOML file
func LoadGridSchema(path string) (*model.GridSchema, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "grid schema file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read grid schema", goerr.V(ConfigPathKey, path))
	}

	schema, err := ParseGridSchema(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load grid schema", goerr.V(ConfigPathKey, path))
	}
	return schema, nil
}

// Grid holds CLI flags for the grid schema file
type Grid struct {
	path string
}

// Flags returns CLI flags for grid configuration
func (g *Grid) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to grid schema TOML file",
			Value:       "grid.toml",
			Sources:     cli.EnvVars("GRIDSELECT_CONFIG"),
			Destination: &g.path,
		},
	}
}

// Path returns the configured schema file path
func (g *Grid) Path() string {
	return g.path
}

// Configure loads the grid schema from the configured path
func (g *Grid) Configure() (*model.GridSchema, error) {
	return LoadGridSchema(g.path)
}
