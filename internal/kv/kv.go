// Package kv describes the key-value medium the attendance dataset is
// persisted to.
package kv

import (
	"context"
	"strings"

	"github.com/protomem/time-clock/internal/model"
)

type Medium interface {
	// Get returns the value under key, ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key, value string) error
}

// Scope selects how long persisted data lives.
type Scope string

const (
	ScopeSession Scope = "session"
	ScopeDurable Scope = "durable"
)

func ParseScope(s string) (Scope, error) {
	switch scope := Scope(strings.ToLower(strings.TrimSpace(s))); scope {
	case ScopeSession, ScopeDurable:
		return scope, nil
	default:
		return "", model.Invalidf("persistence scope", "%q", s)
	}
}
