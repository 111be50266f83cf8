// Package module wires conversions into the API using modkit
package module

import (
	modkit "hebdate/internal/modkit"
	"hebdate/internal/modkit/httpkit"
	str "hebdate/internal/platform/strings"
	converthttp "hebdate/internal/services/api/convert/http"
	convertrepo "hebdate/internal/services/api/convert/repo"
	convertsvc "hebdate/internal/services/api/convert/service"
)

// Module implements modkit.Module and modkit.LegacyMounter
type Module struct {
	built modkit.Built
	svc   convertsvc.Service
	ports Ports
}

// Ports is what other modules and the CLI pull from a convert module
type Ports struct {
	Service convertsvc.Service
}

// New constructs a convert module; deps.Calendar is required
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("convert"), modkit.WithPrefix("/convert")}, opts...)...)

	svc := convertsvc.New(deps.Calendar, deps.YearSource(), convertrepo.NewTable(deps.Overrides()))
	return &Module{built: b, svc: svc, ports: Ports{Service: svc}}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { converthttp.Register(rr, m.svc) })
}

// MountLegacy implements the modkit.LegacyMounter interface
func (m *Module) MountLegacy(r httpkit.Router) {
	converthttp.RegisterLegacy(r, m.svc)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
