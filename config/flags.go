// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"sync"
)

// Section is the config file section holding the flags.
const Section = "general"

// Feature names.
const (
	GrabHook     = "grab_hook"
	Warhammer    = "warhammer"
	Cushion      = "cushion"
	Tea          = "tea"
	Food         = "food"
	Confetti     = "confetti"
	Flask        = "flask"
	Courtroom    = "courtroom"
	CarvedWood   = "carved_wood"
	LeatherStraw = "leather_straw"
	Bookcase     = "bookcase"
	Coins        = "coins"
)

// NumFeatures is the number of feature flags.
const NumFeatures = 12

// Feature describes one flag.
type Feature struct {
	Name        string
	Description string
}

// Features lists every flag in sync message order.
var Features = [NumFeatures]Feature{
	{GrabHook, "Enable Grab Hook"},
	{Warhammer, "Enable Warhammer"},
	{Cushion, "Enable Cushion"},
	{Tea, "Enable Tea"},
	{Food, "Enable Food"},
	{Confetti, "Enable Confetti"},
	{Flask, "Enable Ender Flask"},
	{Courtroom, "Enable Courtroom Items"},
	{CarvedWood, "Enable Carved Wood"},
	{LeatherStraw, "Enable Leather and Straw Blocks"},
	{Bookcase, "Enable Bookcase"},
	{Coins, "Enable Golden Coins"},
}

// ErrUnknownFeature is returned for names not in Features.
var ErrUnknownFeature = errors.New("config: unknown feature")

// index returns the position of name in Features, or -1.
func index(name string) int {
	for i, f := range Features {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Flags is the current set of feature flags. It is safe for concurrent use.
type Flags struct {
	mu     sync.RWMutex
	values [NumFeatures]bool
}

// Defaults returns flags with every feature enabled.
func Defaults() *Flags {
	f := &Flags{}
	for i := range f.values {
		f.values[i] = true
	}
	return f
}

// Enabled reports whether the named feature is on.
// Unknown names report false.
func (f *Flags) Enabled(name string) bool {
	i := index(name)
	if i < 0 {
		return false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[i]
}

// Set turns the named feature on or off.
func (f *Flags) Set(name string, on bool) error {
	i := index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, name)
	}
	f.mu.Lock()
	f.values[i] = on
	f.mu.Unlock()
	return nil
}

// Values returns a copy of all flags in Features order.
func (f *Flags) Values() [NumFeatures]bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values
}

// Map returns the flags keyed by feature name.
func (f *Flags) Map() map[string]bool {
	values := f.Values()
	m := make(map[string]bool, NumFeatures)
	for i, feat := range Features {
		m[feat.Name] = values[i]
	}
	return m
}

func (f *Flags) replace(values [NumFeatures]bool) {
	f.mu.Lock()
	f.values = values
	f.mu.Unlock()
}
