// Package api provides the HTTP API for the application
package api

import (
	"hebdate/internal/modkit"
	"hebdate/internal/modkit/httpkit"
	"hebdate/internal/modkit/module"
	phttp "hebdate/internal/platform/net/http"

	convertmod "hebdate/internal/services/api/convert/module"
	metamod "hebdate/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Deps  modkit.Deps
	Stack httpkit.StackOptions

	// StaticDir is served at the root when it exists
	StaticDir string

	EnableSwagger  bool
	SwaggerSpec    string
	EnableProfiler bool
}

// Modules constructs the API modules and registers their ports under their names
func Modules(deps modkit.Deps) []module.Module {
	mods := []module.Module{
		metamod.New(deps),
		convertmod.New(deps),
	}
	for _, m := range mods {
		// register each module's ports under its own name (for cross-module lookups)
		module.Register(m.Name(), m.Ports())
	}
	return mods
}

// Mount mounts the API service onto the given router
// versioned routes live under /api/v1; modules with flat aliases also mount them on /api
func Mount(r phttp.Router, opt Options) []module.Module {
	mods := Modules(opt.Deps)

	httpkit.MountAPI(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		httpkit.Version(api, "v1", func(v1 httpkit.Router) {
			for _, m := range mods {
				// mount module routes under its prefix
				m.MountRoutes(v1)
			}
		})
		for _, m := range mods {
			if lm, ok := m.(modkit.LegacyMounter); ok {
				lm.MountLegacy(api)
			}
		}
	})

	// Swagger + profiler
	phttp.MountSwagger(r, opt.EnableSwagger, opt.SwaggerSpec)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// the front end; mounted last so /api keeps precedence
	phttp.MountStatic(r, opt.StaticDir)
	return mods
}
