package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gridselect/pkg/cli/config"
	"github.com/secmon-lab/gridselect/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type testCredential struct {
	User  string
	Token string `masq:"secret"`
}

func runWithLogger(t *testing.T, args ...string) (func(), error) {
	t.Helper()

	var cfg config.Logger
	var closer func()
	var configureErr error

	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			closer, configureErr = cfg.Configure()
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
	return closer, configureErr
}

func TestLogger_Configure(t *testing.T) {
	orig := logging.Default()
	t.Cleanup(func() { logging.SetDefault(orig) })

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		closer, err := runWithLogger(t, "--log-format", "json", "--log-output", path, "--log-level", "debug")
		gt.NoError(t, err).Required()

		logging.Default().Debug("cell written",
			"row_id", "row-1",
			"credential", testCredential{User: "grid-admin", Token: "abc-secret"})
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.S(t, string(data)).Contains(`"row_id":"row-1"`)
		gt.S(t, string(data)).Contains("grid-admin")
		gt.S(t, string(data)).NotContains("abc-secret")
	})

	t.Run("console default", func(t *testing.T) {
		closer, err := runWithLogger(t)
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := runWithLogger(t, "--log-level", "verbose")
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := runWithLogger(t, "--log-format", "xml", "--log-output", "stdout")
		gt.Error(t, err)
	})
}
