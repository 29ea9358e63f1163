package dynamotelemetry

import "context"

type accessPatternKey struct{}

// WithAccessPattern labels every operation issued with ctx as part of the named access pattern.
func WithAccessPattern(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, accessPatternKey{}, name)
}

// AccessPatternFrom returns the access pattern attached to ctx, or "".
func AccessPatternFrom(ctx context.Context) string {
	name, _ := ctx.Value(accessPatternKey{}).(string)
	return name
}
