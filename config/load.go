// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gogpu/ggpaint"
)

// DefaultFileName is used when the CLI is given no config path.
const DefaultFileName = "ggpaint.toml"

func key(name string) string {
	return Section + "." + name
}

// newViper returns a viper instance bound to path with every flag
// defaulting to true.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("toml")
	}
	for _, f := range Features {
		v.SetDefault(key(f.Name), true)
	}
	return v
}

// Load reads the flags from path. A missing file is created with the
// defaults. Keys absent from the file keep their default.
func Load(path string) (*Flags, error) {
	f := Defaults()
	if err := f.Reload(path); err != nil {
		return nil, err
	}
	return f, nil
}

// Reload re-reads path into f. On error f is unchanged.
func (f *Flags) Reload(path string) error {
	v := newViper(path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeDefaults(v, path); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var values [NumFeatures]bool
	for i, feat := range Features {
		values[i] = v.GetBool(key(feat.Name))
	}
	f.replace(values)

	ggpaint.Logger().Debug("config: flags loaded", "path", path)
	return nil
}

func writeDefaults(v *viper.Viper, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config: write defaults to %s: %w", path, err)
	}
	ggpaint.Logger().Info("config: created default config", "path", path)
	return nil
}

// Save writes the current flags to path, replacing its content.
func (f *Flags) Save(path string) error {
	v := newViper(path)
	for name, on := range f.Map() {
		v.Set(key(name), on)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
