// Package module wires users into the API using modkit
package module

import (
	"net/http"

	modkit "showyourapp/internal/modkit"
	"showyourapp/internal/modkit/httpkit"
	"showyourapp/internal/platform/net/middleware"
	str "showyourapp/internal/platform/strings"
	usersdom "showyourapp/internal/services/api/users/domain"
	usershttp "showyourapp/internal/services/api/users/http"
	usersrepo "showyourapp/internal/services/api/users/repo"
	userssvc "showyourapp/internal/services/api/users/service"
)

// Ports holds the ports exposed by the users module
type Ports struct {
	Users  usersdom.ServicePort
	Auth   middleware.AuthPort
	Admins usersdom.AdminGate
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

	svc userssvc.Service
}

// New constructs a users module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("users"),
		modkit.WithPrefix("/users"),
	}, opts...)...)

	svc := userssvc.New(deps.PG, usersrepo.NewPG())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{
		Users:  svc,
		Auth:   httpkit.NewPortFunc(svc.TokenFunc()),
		Admins: svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		usershttp.Register(r, m.svc)
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
