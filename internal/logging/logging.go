// Package logging sets up structured logging and tags every record with
// the component that produced it, adapted from holomush-holomush's
// internal/logging handler-wrapping pattern (trimmed of its OpenTelemetry
// trace context, which nothing in this repo propagates).
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// componentHandler wraps a slog.Handler, adding a "component" attribute to
// every record it handles.
type componentHandler struct {
	handler   slog.Handler
	component string
}

func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String("component", h.component))
	return h.handler.Handle(ctx, r)
}

func (h *componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &componentHandler{handler: h.handler.WithAttrs(attrs), component: h.component}
}

func (h *componentHandler) WithGroup(name string) slog.Handler {
	return &componentHandler{handler: h.handler.WithGroup(name), component: h.component}
}

// Setup builds a base slog.Logger writing to w in the given format ("text"
// or "json", defaulting to json). w defaults to os.Stderr when nil.
func Setup(format string, level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

// SetDefault installs Setup's logger as the process-wide default.
func SetDefault(format string, level slog.Level) {
	slog.SetDefault(Setup(format, level, nil))
}

// For returns a logger tagged with component, reading whatever handler is
// currently installed as the process default so call sites at package
// scope don't capture a pre-SetDefault logger at init time.
func For(component string) *slog.Logger {
	return slog.New(&componentHandler{handler: slog.Default().Handler(), component: component})
}
