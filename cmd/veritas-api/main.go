// @title         Veritas API
// @version       0.1.0
// @description   Classifies news text as real or fake

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"veritas/internal/core/artifact"
	"veritas/internal/core/inference"
	"veritas/internal/modkit/httpkit"
	"veritas/internal/modkit/repokit"
	"veritas/internal/platform/config"
	"veritas/internal/platform/logger"
	phttp "veritas/internal/platform/net/http"
	"veritas/internal/platform/store"

	"veritas/internal/services/api"
	metamod "veritas/internal/services/api/meta/module"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	artCfg := root.Prefix("CORE_ARTIFACT_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")      // SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // SERVICE_CLICKHOUSE_*

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// artifacts are loaded once, before anything is served
	paths := artifact.Paths{
		Vectorizer: artCfg.MayString("VECTORIZER_PATH", artifact.DefaultVectorizerPath),
		Model:      artCfg.MayString("MODEL_PATH", artifact.DefaultModelPath),
	}
	bundle, err := artifact.Load(paths)
	if err != nil {
		l.Panic().Err(err).Str("vectorizer", paths.Vectorizer).Str("model", paths.Model).Msg("artifact load failed")
	}
	engine, err := inference.New(bundle)
	if err != nil {
		l.Panic().Err(err).Msg("inference engine")
	}
	info := bundle.Info()
	l.Info().
		Str("model_id", info.ModelID).
		Int("features", info.Features).
		Str("vectorizer", paths.Vectorizer).
		Str("model", paths.Model).
		Msg("artifacts loaded")

	// the journal is optional, each store is opened only when its url is set
	pgURL := pgCfg.MayURL("DBURL")
	chURL := chCfg.MayURL("DBURL")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: metamod.ServiceName,
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled:    chURL != "",
				URL:        chURL,
				ClientName: "veritas",
				ClientTag:  "api",
			},
		},
		store.WithLogger(*logger.Named("store")),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if st.Enabled() {
		repokit.MustGuard(ctx, st)
	}

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_TIMEOUT)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(httpkit.RootStack(info.ModelID)...)
	})

	err = api.Mount(ctx, srv.Router(), api.Options{
		Config:             apiCfg,
		Store:              st,
		Engine:             engine,
		Logger:             logger.Named("api"),
		EnableSwagger:      apiCfg.MayBool("SWAGGER", true),
		SwaggerTitleSuffix: apiCfg.MayString("SWAGGER_TITLE_SUFFIX", ""),
		EnableProfiler:     apiCfg.MayBool("PROFILER", false),
		CORSOrigins:        apiCfg.MayCSV("CORS_ORIGINS", nil),
		RequestTimeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
		Throttle:           apiCfg.MayInt("THROTTLE", 0),
		JournalTimeout:     root.MayDuration("CORE_JOURNAL_TIMEOUT", 0),
	})
	if err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
