package internal

import "github.com/starford/fehu/internal/host"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	client host.Client
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithClient overrides the host client built from configuration.
// Intended for tests.
func WithClient(c host.Client) Option {
	return func(a *application) {
		a.client = c
	}
}
