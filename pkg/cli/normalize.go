package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdNormalize() *cli.Command {
	var fieldType string

	return &cli.Command{
		Name:      "normalize",
		Aliases:   []string{"n"},
		Usage:     "Print the stored form of a raw cell value",
		ArgsUsage: "VALUE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "Field type [select|multi-select]",
				Value:       string(types.FieldTypeSelect),
				Destination: &fieldType,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := model.NewFieldConfig(types.FieldType(fieldType), nil, false)
			if err != nil {
				return goerr.Wrap(err, "invalid --type")
			}

			stored, err := cfg.SerializeCellData(c.Args().First())
			if err != nil {
				return goerr.Wrap(err, "failed to normalize cell value")
			}

			_, err = fmt.Fprintln(c.Root().Writer, stored)
			return err
		},
	}
}
