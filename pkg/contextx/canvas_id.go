package contextx

import (
	"context"
	"fmt"
)

// CanvasID identifies the chart canvas of one dashboard page session.
type CanvasID string

type contextKeyCanvasID struct{}

func (c CanvasID) String() string {
	return string(c)
}

func WithCanvasID(ctx context.Context, canvasID CanvasID) context.Context {
	return context.WithValue(ctx, contextKeyCanvasID{}, canvasID)
}

func CanvasIDFromContext(ctx context.Context) (CanvasID, error) {
	canvasID, ok := ctx.Value(contextKeyCanvasID{}).(CanvasID)
	if !ok || canvasID == "" {
		return "", fmt.Errorf("canvas id: %w", ErrNoValue)
	}

	return canvasID, nil
}
