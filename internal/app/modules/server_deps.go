package modules

import (
	"tora-app.io/tora/internal/api/handlers"
)

// NewServerDeps aggregates module contributions into the HTTP server
// dependency set.
func NewServerDeps(infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		Pool:    infra.Pool,
		Workers: infra.Pools,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
