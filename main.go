package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nvr-ai/go-iconset/iconset"
)

var rootCmd = &cobra.Command{
	Use:          "iconset",
	Short:        "Resize elon.jpg in the current directory into icon-16.png, icon-48.png and icon-128.png",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runIconset,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runIconset(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	gen, err := iconset.New(iconset.DefaultConfig(), iconset.WithLogger(logger))
	if err != nil {
		return err
	}

	_, err = gen.Run()
	return err
}

// newLogger builds a human-readable logger on stderr.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
