// Package module wires social actions into the API using modkit
package module

import (
	"net/http"

	modkit "showyourapp/internal/modkit"
	"showyourapp/internal/modkit/httpkit"
	str "showyourapp/internal/platform/strings"
	repdom "showyourapp/internal/services/reputation/domain"

	socdom "showyourapp/internal/services/api/social/domain"
	sochttp "showyourapp/internal/services/api/social/http"
	socrepo "showyourapp/internal/services/api/social/repo"
	socsvc "showyourapp/internal/services/api/social/service"
)

// Ports holds the ports exposed by the social module
type Ports struct {
	Social socdom.ServicePort
}

// Deps are cross-module dependencies the social module needs at build time
type Deps struct {
	Ledger repdom.Ledger
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc socsvc.Service
}

// New constructs a social module with the provided dependencies and options
func New(deps modkit.Deps, wired Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("social"),
		modkit.WithPrefix("/social"),
	}, opts...)...)

	svc := socsvc.New(deps.PG, socrepo.NewPG(), wired.Ledger)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Social: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		sochttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
