// Package api provides the HTTP API for the application
package api

import (
	"showyourapp/internal/platform/config"
	"showyourapp/internal/platform/logger"
	phttp "showyourapp/internal/platform/net/http"
	"showyourapp/internal/platform/net/middleware"
	"showyourapp/internal/platform/store"

	"showyourapp/internal/modkit"
	"showyourapp/internal/modkit/httpkit"
	"showyourapp/internal/modkit/module"
	"showyourapp/internal/modkit/swaggerkit"

	appsmod "showyourapp/internal/services/api/apps/module"
	metamod "showyourapp/internal/services/api/meta/module"
	socialmod "showyourapp/internal/services/api/social/module"
	taxmod "showyourapp/internal/services/api/taxonomy/module"
	usersmod "showyourapp/internal/services/api/users/module"

	// Reputation module owns the Ledger port consumed by social
	repmod "showyourapp/internal/services/reputation/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Users first: it owns the auth port and the admin gate every
	// moderation surface leans on
	users := usersmod.New(deps)
	userPorts := module.MustPortsOf[usersmod.Ports](users)

	// Reputation exposes the Ledger; social applies it inside its own
	// transactions
	reputation := repmod.New(deps)
	ledger := module.MustPortsOf[repmod.Ports](reputation).Ledger

	mods := []module.Module{
		metamod.New(deps),
		users,
		reputation,
		taxmod.New(deps, taxmod.Deps{Admins: userPorts.Admins}),
		appsmod.New(deps, appsmod.Deps{Admins: userPorts.Admins, Auth: userPorts.Auth}),
		socialmod.New(deps, socialmod.Deps{Ledger: ledger}),
	}

	// versioned API with a common middleware stack; identity rides
	// along when the request carries a valid key, handlers that need
	// it reject anonymous callers themselves
	mw := append(httpkit.CommonStack(), middleware.AuthOptional(userPorts.Auth))
	httpkit.MountAPIV1(r, mw, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
