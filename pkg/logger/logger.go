package logger

import (
	"context"
	"log/slog"
)

type sessionIDKey struct{}

// WithSessionID returns a copy of ctx carrying the console session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionID extracts the session id from ctx, or "" if there is none.
func SessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// ContextHandler stamps every record with the session id carried by the context.
// Level checks are delegated to the embedded handler.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps next.
func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: next}
}

// Handle adds session_id when ctx has one and passes the record on.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := SessionID(ctx); id != "" {
		r.AddAttrs(slog.String("session_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the session stamping on loggers derived with With.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewContextHandler(h.Handler.WithAttrs(attrs))
}

// WithGroup keeps the session stamping on grouped loggers.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return NewContextHandler(h.Handler.WithGroup(name))
}
