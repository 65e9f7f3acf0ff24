// Package module wires the reputation ledger and exposes its port
package module

import (
	"showyourapp/internal/modkit"
	"showyourapp/internal/modkit/httpkit"
	"showyourapp/internal/services/reputation/repo"
)

// Module defines the reputation module.
// It exposes no routes; other services consume the Ledger port
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the reputation module
func New(deps modkit.Deps) *Module {
	m := &Module{deps: deps}
	m.ports = Ports{Ledger: repo.New()}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "reputation" }

// Prefix returns the module route prefix (none, port-only module)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
