package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/cli/config"
	"github.com/secmon-lab/gridselect/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var gridCfg config.Grid

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the grid schema file",
		Flags:   gridCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			schema, err := gridCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logger.Info("Configuration validation passed",
				"path", gridCfg.Path(),
				"field_count", len(schema.Fields),
			)

			w := c.Root().Writer
			for _, f := range schema.Fields {
				logger.Debug("Field validated",
					"id", f.ID,
					"type", f.Config.FieldType(),
					"option_count", len(f.Config.SelectOptions()),
				)
				if _, err := fmt.Fprintf(w, "%s\t%s\t%d options\n", f.ID, f.Config.FieldType(), len(f.Config.SelectOptions())); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
