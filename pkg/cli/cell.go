package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/cli/config"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"github.com/secmon-lab/gridselect/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdCell() *cli.Command {
	return &cli.Command{
		Name:  "cell",
		Usage: "Read and write select cells",
		Commands: []*cli.Command{
			cmdCellWrite(),
			cmdCellRead(),
		},
	}
}

type cellFlags struct {
	grid    config.Grid
	repo    config.Repository
	rowID   string
	fieldID string
}

func (x *cellFlags) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, x.grid.Flags()...)
	flags = append(flags, x.repo.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "row",
			Aliases:     []string{"r"},
			Usage:       "Row ID",
			Required:    true,
			Destination: &x.rowID,
		},
		&cli.StringFlag{
			Name:        "field",
			Aliases:     []string{"f"},
			Usage:       "Field ID",
			Required:    true,
			Destination: &x.fieldID,
		},
	)
	return flags
}

func cmdCellWrite() *cli.Command {
	var cf cellFlags

	return &cli.Command{
		Name:      "write",
		Usage:     "Normalize and store a raw cell value, printing the stored form",
		ArgsUsage: "VALUE",
		Flags:     cf.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := setupUseCases(ctx, &cf.grid, &cf.repo)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, closer)

			cell, err := uc.Grid.WriteCell(ctx, cf.rowID, types.FieldID(cf.fieldID), c.Args().First())
			if err != nil {
				return goerr.Wrap(err, "failed to write cell")
			}

			_, err = fmt.Fprintln(c.Root().Writer, cell.Value)
			return err
		},
	}
}

func cmdCellRead() *cli.Command {
	var cf cellFlags

	return &cli.Command{
		Name:  "read",
		Usage: "Print the display value of a stored cell",
		Flags: cf.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := setupUseCases(ctx, &cf.grid, &cf.repo)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, closer)

			value, err := uc.Grid.ReadCell(ctx, cf.rowID, types.FieldID(cf.fieldID))
			if err != nil {
				return goerr.Wrap(err, "failed to read cell")
			}

			_, err = fmt.Fprintln(c.Root().Writer, value)
			return err
		},
	}
}
