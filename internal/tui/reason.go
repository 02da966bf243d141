package tui

import "context"

type reasonKey struct{}

// WithReason attaches the operator-supplied reason to the action context
func WithReason(ctx context.Context, reason string) context.Context {
	return context.WithValue(ctx, reasonKey{}, reason)
}

// ReasonFrom returns the reason attached by the reject prompt, empty
// when the action ran without one
func ReasonFrom(ctx context.Context) string {
	if v, ok := ctx.Value(reasonKey{}).(string); ok {
		return v
	}
	return ""
}
