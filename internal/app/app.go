// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/devharbor/netward/internal/adapters/out/docker"
	"github.com/devharbor/netward/internal/adapters/out/eventbus"
	"github.com/devharbor/netward/internal/adapters/out/filesystem"
	"github.com/devharbor/netward/internal/domain"
	"github.com/devharbor/netward/internal/lifecycle"
	"github.com/devharbor/netward/internal/usecase/bootstrap"
	"github.com/devharbor/netward/internal/usecase/info"
	"github.com/devharbor/netward/internal/usecase/network"
	"github.com/devharbor/netward/internal/usecase/reconcile"
)

// App wires adapters and use cases together for the CLI.
type App struct {
	Config Config
	Log    zerowrap.Logger

	engine *docker.Engine
	bus    *eventbus.InMemory

	networkSvc   *network.Service
	bootstrapSvc *bootstrap.Service
	reconcileSvc *reconcile.Service

	logCleanup func()
}

// New loads configuration, initializes the logger and wires all services.
func New(configPath string) (*App, error) {
	cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, logCleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := docker.NewEngine()
	if err != nil {
		if logCleanup != nil {
			logCleanup()
		}
		return nil, fmt.Errorf("failed to create container engine: %w", err)
	}

	bus := eventbus.NewInMemory(cfg.Events.BufferSize, log)
	if err := bus.Start(); err != nil {
		if logCleanup != nil {
			logCleanup()
		}
		return nil, fmt.Errorf("failed to start event bus: %w", err)
	}

	if err := registerEventHandlers(bus, log); err != nil {
		_ = bus.Stop()
		if logCleanup != nil {
			logCleanup()
		}
		return nil, err
	}

	networkSvc := network.NewService(engine, bus, network.Config{
		BridgeName:   cfg.Network.Bridge,
		ProxyNetwork: cfg.Network.Proxy,
		Reserved:     cfg.Network.Reserved,
		Ceiling:      cfg.Network.Ceiling,
		PruneBatch:   cfg.Network.PruneBatch,
	})

	certsDir := filesystem.ExpandTilde(cfg.Bootstrap.CertsDir)
	bootstrapSvc := bootstrap.NewService(engine, filesystem.NewArtifactStore(), bus, bootstrap.Config{
		Project:      cfg.Bootstrap.Project,
		Service:      cfg.Bootstrap.Service,
		Instance:     cfg.Bootstrap.Instance,
		Image:        cfg.Bootstrap.Image,
		Cmd:          cfg.Bootstrap.Cmd,
		ArtifactPath: cfg.Bootstrap.ArtifactPath,
		Binds:        map[string]string{certsDir: "/certs"},
		Privileged:   cfg.Bootstrap.Privileged,
	})

	reconcileSvc := reconcile.NewService(engine, bus, reconcile.Config{
		BridgeName:  cfg.Network.Bridge,
		Concurrency: cfg.Reconcile.Concurrency,
	})

	return &App{
		Config:       cfg,
		Log:          log,
		engine:       engine,
		bus:          bus,
		networkSvc:   networkSvc,
		bootstrapSvc: bootstrapSvc,
		reconcileSvc: reconcileSvc,
		logCleanup:   logCleanup,
	}, nil
}

// PreStart runs the stages that must complete before an application's
// containers come up: free network capacity first, then make sure the
// shared bridge and the platform bootstrap exist.
func (a *App) PreStart(ctx context.Context, app domain.Application) error {
	ctx = zerowrap.WithCtx(ctx, a.Log)

	pipeline := lifecycle.NewPipeline("pre-start").
		Add(lifecycle.Stage{Name: "network-capacity", Priority: 10, Run: func(ctx context.Context) error {
			return a.networkSvc.EnsureCapacity(ctx, app.Name)
		}}).
		Add(lifecycle.Stage{Name: "shared-bridge", Priority: 20, Run: func(ctx context.Context) error {
			return a.networkSvc.EnsureBridge(ctx)
		}}).
		Add(lifecycle.Stage{Name: "platform-bootstrap", Priority: 20, Run: func(ctx context.Context) error {
			return a.bootstrapSvc.EnsureBootstrapped(ctx, app.Name)
		}})

	return pipeline.Run(ctx)
}

// PostStart attaches the application's running containers to the shared
// bridge once they are up.
func (a *App) PostStart(ctx context.Context, app domain.Application) error {
	ctx = zerowrap.WithCtx(ctx, a.Log)

	pipeline := lifecycle.NewPipeline("post-start").
		Add(lifecycle.Stage{Name: "attach-containers", Priority: 10, Run: func(ctx context.Context) error {
			return a.reconcileSvc.ReconcileApp(ctx, app)
		}})

	return pipeline.Run(ctx)
}

// Prune runs a standalone capacity pass.
func (a *App) Prune(ctx context.Context, keepApps ...string) error {
	ctx = zerowrap.WithCtx(ctx, a.Log)
	return a.networkSvc.EnsureCapacity(ctx, keepApps...)
}

// Info reports an application's services and the hostnames they answer on.
func (a *App) Info(app domain.Application) *domain.AppInfo {
	return info.BuildAppInfo(app)
}

// Ping checks that the container engine is reachable.
func (a *App) Ping(ctx context.Context) error {
	ctx = zerowrap.WithCtx(ctx, a.Log)
	return a.engine.Ping(ctx)
}

// Close releases the engine connection, stops the event bus and flushes logs.
func (a *App) Close() error {
	var firstErr error
	if err := a.bus.Stop(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.engine.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return firstErr
}
