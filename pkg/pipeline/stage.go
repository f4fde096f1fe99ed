// Package pipeline provides the stage abstraction and shared types for the
// caption pipeline.
package pipeline

import (
	"context"
)

// Stage is one step of the caption pipeline: fit, layout, caption drawing.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function act as a Stage, mostly in tests.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
