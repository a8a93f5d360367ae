// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors and FlowOptions.

package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/minfill/logging"
)

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source equals sink")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures Dinic.
//   - Ctx: cancellation; nil means context.Background().
//   - Logger: receives one Debug record per augmentation; nil discards.
//   - LevelRebuildInterval: rebuild the level graph every N augmentations
//     (0 = only when the blocking flow is exhausted).
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *logging.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns options with a background context, a silent logger
// and no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: logging.NoopLogger(),
	}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = logging.NoopLogger()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}
