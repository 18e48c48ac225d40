// Command canvasctl inspects canvases, feature flags and the canvas shader
// without a running client.
//
// Usage:
//
//	canvasctl render picture.png -o texture.png --scale 16
//	canvasctl encode picture.png -o updates.bin --name mapA --version 3
//	canvasctl render --stream updates.bin -o out/
//	canvasctl flags --config ggpaint.toml --watch
//	canvasctl quads --width 32 --height 16 --facing north
//	canvasctl shader -o canvas.spv
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/ggpaint"
)

var (
	// Version is set at build time.
	Version = "dev"

	configFile string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:           "canvasctl",
		Short:         "Inspect canvases, feature flags and the canvas shader",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(viper.GetString("log-level"))
		},
	}
)

// setupLogging routes the library logger through charmbracelet/log.
func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "canvasctl",
	})
	log.SetDefault(logger)
	ggpaint.SetLogger(slog.New(logger))
	return nil
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "feature flag file (default ./ggpaint.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetEnvPrefix("canvasctl")
	viper.AutomaticEnv()

	rootCmd.AddCommand(renderCmd, encodeCmd, flagsCmd, quadsCmd, shaderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("canvasctl failed", "err", err)
		os.Exit(1)
	}
}
