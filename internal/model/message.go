// Package model defines the core domain models used throughout the application.
package model

import "time"

// RawMessage is a single notification text as provided by the message store.
// The core never mutates raw messages.
type RawMessage struct {
	Timestamp time.Time
	SourceID  string // Stable identifier assigned by the message store
	Sender    string // Sending address or short code; may be empty
	Body      string
}
