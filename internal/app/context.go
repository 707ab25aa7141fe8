package app

import "context"

type contextKey struct{}

// FromContext returns the App stored by WithApp, or nil
func FromContext(ctx context.Context) *App {
	if ctx == nil {
		return nil
	}
	a, _ := ctx.Value(contextKey{}).(*App)
	return a
}

// WithApp stores the App in ctx for subcommands
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}
