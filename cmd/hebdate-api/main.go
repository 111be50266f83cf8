// @title         Hebdate API
// @version       0.1.0
// @description   Hebrew and Gregorian date conversion

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hebdate/internal/adapters/hebcal"
	"hebdate/internal/adapters/localcal"
	"hebdate/internal/core/calendar"
	"hebdate/internal/core/history"
	"hebdate/internal/modkit"
	"hebdate/internal/platform/config"
	"hebdate/internal/platform/logger"
	phttp "hebdate/internal/platform/net/http"
	"hebdate/internal/platform/net/middleware"
	"hebdate/internal/platform/store"

	"hebdate/internal/modkit/httpkit"
	"hebdate/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := apiCfg.Prefix("OVERRIDES_PGSQL_") // supplemental overrides live under CORE_API_OVERRIDES_PGSQL_*

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// calendar capability; the offline calendar also supplies the year helpers
	local := localcal.New()
	calName := apiCfg.MayEnum("CALENDAR", "hebcal", "hebcal", "local")
	var cal calendar.Converter = local
	if calName == "hebcal" {
		cal = hebcal.NewConverter(hebcal.NewClient(hebcal.FromConfig(apiCfg)), local)
	}

	// override table, optionally supplemented from postgres
	overrides := history.MustDefault()
	dbURL := pgCfg.MayString("DBURL", "")
	st, err := store.Open(ctx,
		store.Config{
			AppName: "hebdate-api",
			PG: store.PGConfig{
				Enabled:     dbURL != "",
				URL:         dbURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if st.PG != nil {
		if overrides, err = history.WithPG(ctx, overrides, st.PG); err != nil {
			l.Panic().Err(err).Msg("loading supplemental overrides failed")
		}
	}

	// http server (reads CORE_API_PORT, then PORT)
	srv := phttp.NewServer(
		phttp.ServerOptions{Addr: apiCfg.MayPort("PORT", "10000", "PORT")},
		func(m *chi.Mux) { m.Use(middleware.Heartbeat("/ping")) },
	)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Deps: modkit.Deps{
				Log:          *l,
				Cfg:          apiCfg,
				Calendar:     cal,
				Years:        local,
				CalendarName: calName,
				History:      overrides,
				PG:           st.PG,
			},
			Stack: httpkit.StackOptions{
				CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
				Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
			},
			StaticDir:      apiCfg.MayString("STATIC_DIR", "public"),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			SwaggerSpec:    apiCfg.MayString("SWAGGER_SPEC", ""),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
