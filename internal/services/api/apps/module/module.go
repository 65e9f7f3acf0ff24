// Package module wires apps into the API using modkit
package module

import (
	"net/http"

	modkit "showyourapp/internal/modkit"
	"showyourapp/internal/modkit/httpkit"
	"showyourapp/internal/platform/net/middleware"
	str "showyourapp/internal/platform/strings"

	appsdom "showyourapp/internal/services/api/apps/domain"
	appshttp "showyourapp/internal/services/api/apps/http"
	appsrepo "showyourapp/internal/services/api/apps/repo"
	appssvc "showyourapp/internal/services/api/apps/service"
)

// Ports holds the ports exposed by the apps module
type Ports struct {
	Apps appsdom.ServicePort
}

// Deps are cross-module dependencies the apps module needs at build time
type Deps struct {
	Admins appsdom.AdminGate
	Auth   middleware.AuthPort
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

	svc appssvc.Service
}

// New constructs an apps module with the provided dependencies and options
func New(deps modkit.Deps, wired Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("apps"),
		modkit.WithPrefix("/apps"),
	}, opts...)...)

	svc := appssvc.New(deps.PG, appsrepo.NewPG(), wired.Admins)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Apps: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		appshttp.Register(r, m.svc, wired.Auth)
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
