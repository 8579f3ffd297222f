package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/cli/config"
	httpctrl "github.com/secmon-lab/gridselect/pkg/controller/http"
	"github.com/secmon-lab/gridselect/pkg/utils/logging"
	"github.com/secmon-lab/gridselect/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var gridCfg config.Grid
	var repoCfg config.Repository

	var flags []cli.Flag
	flags = append(flags, &cli.StringFlag{
		Name:        "addr",
		Usage:       "Listen address",
		Value:       "127.0.0.1:8080",
		Sources:     cli.EnvVars("GRIDSELECT_ADDR"),
		Destination: &addr,
	})
	flags = append(flags, gridCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the grid cell API over HTTP",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := setupUseCases(ctx, &gridCfg, &repoCfg)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, closer)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc.Grid),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)
			case <-ctx.Done():
				logging.Default().Info("Context canceled, shutting down")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
