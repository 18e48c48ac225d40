package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/ggpaint/config"
)

var (
	flagsWatch bool
	flagsSet   []string

	flagsCmd = &cobra.Command{
		Use:   "flags",
		Short: "Print the feature flags",
		Long: `Flags loads the feature flag file, creating it with defaults if it does
not exist, and prints every flag. --set name=false changes a flag and saves
the file. --watch keeps running and prints the flags after every change.`,
		Args: cobra.NoArgs,
		RunE: runFlags,
	}
)

func init() {
	flagsCmd.Flags().BoolVarP(&flagsWatch, "watch", "w", false, "reprint the flags when the file changes")
	flagsCmd.Flags().StringSliceVar(&flagsSet, "set", nil, "set flags, e.g. --set tea=false,coins=true")
}

func flagsPath() string {
	if p := viper.GetString("config"); p != "" {
		return p
	}
	return config.DefaultFileName
}

func runFlags(cmd *cobra.Command, _ []string) error {
	path := flagsPath()
	flags, err := config.Load(path)
	if err != nil {
		return err
	}

	if len(flagsSet) > 0 {
		if err := applySettings(flags, flagsSet); err != nil {
			return err
		}
		if err := flags.Save(path); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	printFlags(out, flags)
	if !flagsWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Info("watching", "file", path)
	err = config.Watch(ctx, path, flags, func(f *config.Flags) {
		fmt.Fprintln(out)
		printFlags(out, f)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func applySettings(flags *config.Flags, settings []string) error {
	for _, s := range settings {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid setting %q, want name=true|false", s)
		}
		var on bool
		switch value {
		case "true", "on", "1":
			on = true
		case "false", "off", "0":
		default:
			return fmt.Errorf("invalid value %q for %s", value, name)
		}
		if err := flags.Set(name, on); err != nil {
			return err
		}
	}
	return nil
}

func printFlags(w io.Writer, flags *config.Flags) {
	values := flags.Values()
	for i, f := range config.Features {
		state := "off"
		if values[i] {
			state = "on"
		}
		fmt.Fprintf(w, "%-14s %-3s  %s\n", f.Name, state, f.Description)
	}
}
