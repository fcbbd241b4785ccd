// Package modules contains the domain-oriented dependency units of the
// composition root.
package modules

import (
	"context"

	"github.com/riverqueue/river"

	"tora-app.io/tora/internal/api/handlers"
)

// Module is a domain-specific dependency unit in the composition root.
type Module interface {
	// Name returns a stable module identifier for logging.
	Name() string

	// ContributeServerDeps injects module-owned dependencies into the
	// HTTP server deps.
	ContributeServerDeps(*handlers.ServerDeps)

	// RegisterWorkers registers module workers into the shared River
	// worker registry.
	RegisterWorkers(*river.Workers)

	// Shutdown performs module-local graceful cleanup.
	Shutdown(context.Context) error
}
