// Package sheetmap converts between xlsx spreadsheets and generic tables or
// typed record collections, driven by declarative per-column settings.
package sheetmap

import (
	"github.com/rs/zerolog"
)

// Handler is the entry point for all read and write operations. It holds no
// per-call state, so one Handler may serve concurrent calls as long as each
// call works on its own files and tables.
type Handler struct {
	log zerolog.Logger
}

// HandlerOption configures a Handler at construction.
type HandlerOption func(*Handler)

// WithLogger injects the logger every validation error is reported through.
// The default is a no-op logger.
func WithLogger(log zerolog.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = log
	}
}

// New creates a Handler.
func New(opts ...HandlerOption) *Handler {
	h := &Handler{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// callOptions are the per-call knobs shared by all operations.
type callOptions struct {
	sheet       int
	stopOnError bool
}

// Option configures a single read or write call.
type Option func(*callOptions)

// Sheet selects the zero-based sheet index to read. The default is the
// first sheet.
func Sheet(index int) Option {
	return func(o *callOptions) {
		o.sheet = index
	}
}

// StopOnError makes the first validation violation abort the call instead
// of logging and continuing.
func StopOnError() Option {
	return func(o *callOptions) {
		o.stopOnError = true
	}
}

func applyOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
