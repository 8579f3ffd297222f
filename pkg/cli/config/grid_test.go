package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gridselect/pkg/cli/config"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

func TestParseGridSchema(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "valid configuration with both field types",
			content: `
[[fields]]
id = "priority"
name = "Priority"
type = "select"

  [[fields.options]]
  id = "low"
  name = "Low"
  color = "#38A169"

  [[fields.options]]
  id = "high"
  name = "High"
  color = "#E53E3E"

[[fields]]
id = "tags"
name = "Tags"
type = "multi-select"
disable_color = true

  [[fields.options]]
  id = "bug"
  name = "Bug"
`,
		},
		{
			name: "field without options",
			content: `
[[fields]]
id = "stage"
name = "Stage"
type = "select"
`,
		},
		{
			name: "duplicate field id",
			content: `
[[fields]]
id = "stage"
name = "Stage"
type = "select"

[[fields]]
id = "stage"
name = "Stage again"
type = "multi-select"
`,
			wantErr: config.ErrDuplicateFieldID,
		},
		{
			name: "duplicate option id",
			content: `
[[fields]]
id = "stage"
name = "Stage"
type = "select"

  [[fields.options]]
  id = "todo"
  name = "Todo"

  [[fields.options]]
  id = "todo"
  name = "Todo again"
`,
			wantErr: config.ErrDuplicateOptionID,
		},
		{
			name: "invalid field type",
			content: `
[[fields]]
id = "notes"
name = "Notes"
type = "text"
`,
			wantErr: config.ErrInvalidFieldType,
		},
		{
			name: "invalid field id",
			content: `
[[fields]]
id = "Bad ID"
name = "Bad"
type = "select"
`,
			wantErr: config.ErrInvalidFieldID,
		},
		{
			name: "missing field name",
			content: `
[[fields]]
id = "stage"
type = "select"
`,
			wantErr: config.ErrMissingName,
		},
		{
			name: "missing option id",
			content: `
[[fields]]
id = "stage"
name = "Stage"
type = "select"

  [[fields.options]]
  name = "Todo"
`,
			wantErr: config.ErrMissingOptionID,
		},
		{
			name:    "broken toml",
			content: `[[fields]`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := config.ParseGridSchema([]byte(tt.content))
			if tt.wantErr != nil {
				gt.Error(t, err)
				gt.B(t, errors.Is(err, tt.wantErr)).
					Describef("expected %v, got %v", tt.wantErr, err).
					True()
				return
			}
			gt.NoError(t, err).Required()
			gt.B(t, schema != nil).True()
		})
	}
}

func TestParseGridSchema_Contents(t *testing.T) {
	schema, err := config.ParseGridSchema([]byte(`
[[fields]]
id = "priority"
name = "Priority"
type = "select"

  [[fields.options]]
  id = "low"
  name = "Low"
  color = "#38A169"

[[fields]]
id = "tags"
name = "Tags"
type = "multi-select"
disable_color = true
`))
	gt.NoError(t, err).Required()
	gt.A(t, schema.Fields).Length(2).Required()

	priority, err := schema.Field("priority")
	gt.NoError(t, err).Required()
	gt.S(t, priority.Name).Equal("Priority")
	gt.V(t, priority.Config.Cardinality()).Equal(types.Single)
	opt, ok := priority.Config.SelectOptions().Find("low")
	gt.B(t, ok).True()
	gt.S(t, opt.Color).Equal("#38A169")

	tags, err := schema.Field("tags")
	gt.NoError(t, err).Required()
	gt.V(t, tags.Config.Cardinality()).Equal(types.Multi)
	gt.B(t, tags.Config.ColorDisabled()).True()
}

func TestLoadGridSchema(t *testing.T) {
	t.Run("file exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grid.toml")
		gt.NoError(t, os.WriteFile(path, []byte(`
[[fields]]
id = "stage"
name = "Stage"
type = "select"
`), 0600)).Required()

		schema, err := config.LoadGridSchema(path)
		gt.NoError(t, err).Required()
		gt.A(t, schema.Fields).Length(1)
	})

	t.Run("file missing", func(t *testing.T) {
		_, err := config.LoadGridSchema(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, err)
		gt.B(t, errors.Is(err, config.ErrConfigNotFound)).True()
	})
}
