// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config holds the feature flags that switch content on and off.
//
// Flags are read from a TOML, YAML or JSON file with viper. Each flag lives
// under the "general" section; a missing file is created with every flag
// enabled. A running client can follow edits with a Watcher, and a server
// can override the local values by sending a SyncMessage.
package config
