package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/cli/config"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"github.com/secmon-lab/gridselect/pkg/usecase"
	"github.com/secmon-lab/gridselect/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdOption() *cli.Command {
	return &cli.Command{
		Name:  "option",
		Usage: "Manage select options",
		Commands: []*cli.Command{
			cmdOptionNew(),
			cmdOptionAdd(),
		},
	}
}

func cmdOptionNew() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Print new options with generated IDs as TOML",
		ArgsUsage: "NAME...",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return goerr.New("at least one option name is required")
			}

			gen := model.UUIDGenerator{}
			w := c.Root().Writer
			for _, name := range c.Args().Slice() {
				opt := model.NewOption(gen, name)
				if _, err := fmt.Fprintf(w, "[[fields.options]]\nid = %q\nname = %q\n\n", opt.ID, opt.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func cmdOptionAdd() *cli.Command {
	var gridCfg config.Grid
	var repoCfg config.Repository
	var fieldID string

	var flags []cli.Flag
	flags = append(flags, gridCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "field",
		Aliases:     []string{"f"},
		Usage:       "Field ID to add the option to",
		Required:    true,
		Destination: &fieldID,
	})

	return &cli.Command{
		Name:      "add",
		Usage:     "Add an option to a stored field config",
		ArgsUsage: "NAME",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := setupUseCases(ctx, &gridCfg, &repoCfg)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, closer)

			opt, err := uc.Grid.AddOption(ctx, types.FieldID(fieldID), c.Args().First())
			if err != nil {
				return goerr.Wrap(err, "failed to add option")
			}

			_, err = fmt.Fprintf(c.Root().Writer, "%s\t%s\n", opt.ID, opt.Name)
			return err
		},
	}
}

// setupUseCases loads the schema, opens the repository and reconciles stored configs
func setupUseCases(ctx context.Context, gridCfg *config.Grid, repoCfg *config.Repository) (*usecase.UseCases, io.Closer, error) {
	schema, err := gridCfg.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load grid schema")
	}

	repo, err := repoCfg.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure repository")
	}

	uc := usecase.New(repo, usecase.WithSchema(schema))
	if err := uc.Grid.SyncSchema(ctx); err != nil {
		safe.Close(ctx, repo)
		return nil, nil, goerr.Wrap(err, "failed to sync grid schema")
	}

	return uc, repo, nil
}
