// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

// State is the content state of a cached texture.
//
// Transitions only move forward: Uninitialized to Placeholder or Loaded,
// Placeholder to Loaded, and Loaded to Loaded with a newer version.
type State uint8

const (
	// StateUninitialized means nothing has been uploaded yet.
	StateUninitialized State = iota

	// StatePlaceholder means the placeholder color has been uploaded.
	StatePlaceholder

	// StateLoaded means real picture data has been uploaded.
	StateLoaded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePlaceholder:
		return "placeholder"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Outcome records what the most recent refresh of an entry did.
type Outcome uint8

const (
	// OutcomeNone means the entry has not been refreshed.
	OutcomeNone Outcome = iota

	// OutcomeUploaded means picture data was uploaded.
	OutcomeUploaded

	// OutcomePlaceholder means the placeholder was uploaded.
	OutcomePlaceholder

	// OutcomeKept means the picture was missing and the texture was left as is.
	OutcomeKept

	// OutcomeSizeMismatch means the pixel buffer was too short and was rejected.
	OutcomeSizeMismatch

	// OutcomeFailed means the upload reached the device and failed.
	OutcomeFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeUploaded:
		return "uploaded"
	case OutcomePlaceholder:
		return "placeholder"
	case OutcomeKept:
		return "kept"
	case OutcomeSizeMismatch:
		return "size-mismatch"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Wrote reports whether the outcome changed texture content.
func (o Outcome) Wrote() bool {
	return o == OutcomeUploaded || o == OutcomePlaceholder
}
