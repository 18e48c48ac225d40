// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"testing"
)

func TestSyncMessageRoundTrip(t *testing.T) {
	src := Defaults()
	_ = src.Set(Warhammer, false)
	_ = src.Set(Coins, false)

	b, err := src.SyncMessage().MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != NumFeatures || b[0] != 1 || b[1] != 0 || b[11] != 0 {
		t.Fatalf("wire bytes = %v", b)
	}

	dst := Defaults()
	if err := dst.ApplySync(b); err != nil {
		t.Fatalf("ApplySync() error = %v", err)
	}
	if dst.Values() != src.Values() {
		t.Errorf("synced values = %v, want %v", dst.Values(), src.Values())
	}
}

func TestApplySyncRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{"empty", nil},
		{"short", make([]byte, NumFeatures-1)},
		{"long", make([]byte, NumFeatures+1)},
		{"bad value", []byte{0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Defaults()
			if err := f.ApplySync(tt.b); !errors.Is(err, ErrInvalidSyncMessage) {
				t.Errorf("ApplySync() error = %v, want %v", err, ErrInvalidSyncMessage)
			}
			if f.Values() != Defaults().Values() {
				t.Error("invalid message modified flags")
			}
		})
	}
}

func TestSyncMessageUnmarshalKeepsTarget(t *testing.T) {
	msg := SyncMessage{true, true}
	if err := msg.UnmarshalBinary([]byte{1}); err == nil {
		t.Fatal("expected error")
	}
	if !msg[0] || !msg[1] {
		t.Error("failed unmarshal modified the message")
	}
}
