package cli

import (
	"context"
	"io"
	"os"

	"github.com/secmon-lab/gridselect/pkg/cli/config"
	"github.com/secmon-lab/gridselect/pkg/utils/errutil"
	"github.com/secmon-lab/gridselect/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	return run(ctx, args, version, os.Stdout)
}

func run(ctx context.Context, args []string, version string, w io.Writer) error {
	app := newApp(version, w)

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}

func newApp(version string, w io.Writer) *cli.Command {
	var loggerCfg config.Logger
	var closer func()

	return &cli.Command{
		Name:    "gridselect",
		Usage:   "Select-field option sets and cell value normalization for grids",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Writer:  w,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting gridselect", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdNormalize(),
			cmdValidate(),
			cmdOption(),
			cmdCell(),
			cmdServe(),
			cmdMigrate(),
		},
	}
}
