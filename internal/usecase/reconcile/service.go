// Package reconcile implements the container attachment use case: it brings
// every running container of an application onto the shared bridge network
// with a fresh alias set.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/devharbor/netward/internal/boundaries/out"
	"github.com/devharbor/netward/internal/domain"
)

const defaultConcurrency = 4

// Config holds configuration needed by the reconcile service.
type Config struct {
	BridgeName  string // shared bridge network containers attach to
	Concurrency int    // parallel container attachments per pass
}

// Service implements container network reconciliation.
type Service struct {
	engine out.ContainerEngine
	events out.EventPublisher
	config Config
}

// NewService creates a new reconcile service.
func NewService(engine out.ContainerEngine, events out.EventPublisher, config Config) *Service {
	if config.Concurrency <= 0 {
		config.Concurrency = defaultConcurrency
	}
	return &Service{
		engine: engine,
		events: events,
		config: config,
	}
}

// ReconcileApp attaches every running container of app to the shared bridge.
// Each container is detached first so its alias set is rebuilt from scratch,
// then reconnected under <service>.<app>.internal plus the service's declared
// proxy hostnames.
//
// Containers are processed independently: one failing never blocks its
// siblings. All failures are reported together after the pass.
func (s *Service) ReconcileApp(ctx context.Context, app domain.Application) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ReconcileApp",
		"app":                 app.Name,
	})
	log := zerowrap.FromCtx(ctx)

	bridge, err := s.findBridge(ctx)
	if err != nil {
		return err
	}

	containers, err := s.engine.ListContainers(ctx, domain.ContainerFilter{
		App:     app.Name,
		Running: true,
	})
	if err != nil {
		return fmt.Errorf("failed to list containers for %s: %w", app.Name, err)
	}

	if len(containers) == 0 {
		log.Debug().Msg("no running containers to reconcile")
		return nil
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for _, c := range containers {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if err := s.reconcileContainer(gctx, app, bridge, c); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			// Never returned so one container cannot cancel its siblings.
			return nil
		})
	}

	_ = g.Wait()

	if len(errs) > 0 {
		log.Warn().
			Int(zerowrap.FieldCount, len(errs)).
			Int("total", len(containers)).
			Msg("some containers failed to reconcile")
		return fmt.Errorf("reconcile %s: %w", app.Name, errors.Join(errs...))
	}

	log.Info().
		Int(zerowrap.FieldCount, len(containers)).
		Str("network", bridge.Name).
		Msg("reconciled application containers")

	return nil
}

func (s *Service) reconcileContainer(ctx context.Context, app domain.Application, bridge *domain.Network, c *domain.Container) error {
	log := zerowrap.FromCtx(ctx)
	aliases := app.AliasSet(c.Service)

	// Detach first so a stale endpoint's aliases never survive the pass.
	if err := s.engine.DisconnectNetwork(ctx, bridge.ID, c.ID); err != nil {
		if !errors.Is(err, domain.ErrNotConnected) {
			return fmt.Errorf("disconnect %s: %w", c.Name, err)
		}
	}

	if err := s.engine.ConnectNetwork(ctx, bridge.ID, c.ID, aliases); err != nil {
		if !errors.Is(err, domain.ErrAlreadyConnected) {
			return fmt.Errorf("connect %s: %w", c.Name, err)
		}
	}

	log.Debug().
		Str("container", c.Name).
		Str("service", c.Service).
		Strs("aliases", aliases).
		Msg("container attached to shared bridge")

	if s.events != nil {
		if err := s.events.Publish(domain.EventContainerAttached, domain.ContainerAttachedPayload{
			ContainerID: c.ID,
			App:         app.Name,
			Service:     c.Service,
			Network:     bridge.Name,
			Aliases:     aliases,
		}); err != nil {
			log.WrapErr(err, "failed to publish container attached event")
		}
	}

	return nil
}

func (s *Service) findBridge(ctx context.Context) (*domain.Network, error) {
	networks, err := s.engine.ListNetworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	for _, nw := range networks {
		if nw.Name == s.config.BridgeName {
			return nw, nil
		}
	}
	return nil, fmt.Errorf("shared bridge %s: %w", s.config.BridgeName, domain.ErrNetworkNotFound)
}
