// Package api assembles the HTML page, the JSON API and the docs on one router
package api

import (
	"context"
	"time"

	"veritas/internal/core/inference"
	"veritas/internal/platform/config"
	"veritas/internal/platform/logger"
	phttp "veritas/internal/platform/net/http"
	"veritas/internal/platform/store"

	"veritas/internal/modkit"
	"veritas/internal/modkit/httpkit"
	"veritas/internal/modkit/module"
	"veritas/internal/modkit/swaggerkit"

	metamod "veritas/internal/services/api/meta/module"
	journalmod "veritas/internal/services/journal/module"
	predictmod "veritas/internal/services/predict/module"
	"veritas/internal/services/web"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Engine *inference.Engine
	Logger *logger.Logger

	EnableSwagger      bool
	SwaggerTitleSuffix string
	EnableProfiler     bool
	CORSOrigins        []string
	RequestTimeout     time.Duration
	Throttle           int

	// JournalTimeout bounds a single journal write, zero means the journal default
	JournalTimeout time.Duration
}

// Mount mounts the web page and the versioned API onto r. The journal schema
// is created first when a store is configured.
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	deps := modkit.Deps{
		Log:            *log,
		Cfg:            opt.Config,
		Engine:         opt.Engine,
		JournalTimeout: opt.JournalTimeout,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	journal := journalmod.New(deps)
	if deps.Journaling() {
		if err := journal.EnsureSchema(ctx); err != nil {
			return err
		}
		log.Info().Bool("pg", deps.PG != nil).Bool("ch", deps.CH != nil).Msg("prediction journal enabled")
	}
	register(journal)
	jp, _ := module.PortsAs[journalmod.Ports](journal.Name())

	predict := register(predictmod.New(deps, jp.Writer))
	predictor := module.MustPortsOf[predictmod.Ports](predict).Predictor

	mods := []module.Module{
		register(metamod.New(deps)),
		predict,
		journal,
	}

	web.Register(r, predictor)

	httpkit.MountAPIV1(r, httpkit.APIStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Timeout:     opt.RequestTimeout,
		Throttle:    opt.Throttle,
	}), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	modelID := deps.ModelID()
	swaggerkit.Mount(r, swaggerkit.Options{
		Enabled:     opt.EnableSwagger,
		TitleSuffix: opt.SwaggerTitleSuffix,
		Mutators: []swaggerkit.SpecMutator{func(spec map[string]any) {
			if info, ok := spec["info"].(map[string]any); ok && modelID != "" {
				info["x-model-id"] = modelID
			}
		}},
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	return nil
}

var publish = module.Register

// register publishes the ports of m under its name for sibling lookups
func register(m module.Module) module.Module {
	publish(m.Name(), m.Ports())
	return m
}
