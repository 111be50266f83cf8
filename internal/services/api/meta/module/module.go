// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"hebdate/internal/core/version"
	modkit "hebdate/internal/modkit"
	"hebdate/internal/modkit/httpkit"
	kmod "hebdate/internal/modkit/module"
	str "hebdate/internal/platform/strings"

	metahttp "hebdate/internal/services/api/meta/http"
)

// Module implements modkit.Module and modkit.LegacyMounter
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	hd := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   time.Now(),
		Calendar:    deps.CalendarName,
		Overrides:   deps.Overrides().Len(),
		Modules:     kmod.Names,
	}
	// a nil *pg.PG must stay a nil interface
	if deps.PG != nil {
		hd.PG = deps.PG
	}
	return &Module{built: b, deps: hd}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// MountLegacy implements the modkit.LegacyMounter interface
func (m *Module) MountLegacy(r httpkit.Router) { metahttp.RegisterLegacy(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
