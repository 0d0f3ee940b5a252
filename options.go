package callfsm

import "log/slog"

type options struct {
	name   string
	logger *slog.Logger
	hooks  LifecycleHooks
}

// Option defines a functional option for configuring a machine.
type Option func(*options)

// WithName labels the machine. The name is attached to every log record and
// lifecycle event the machine emits.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}
