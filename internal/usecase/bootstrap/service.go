// Package bootstrap implements the one-shot platform bootstrap use case.
//
// Bootstrap runs a short-lived container that provisions the platform's
// certificate authority. The run must happen at most once: a durable
// artifact on the host marks completion, and a deterministic container
// name arbitrates concurrent attempts across processes.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/devharbor/netward/internal/boundaries/out"
	"github.com/devharbor/netward/internal/domain"
)

// Config holds configuration needed by the bootstrap service.
type Config struct {
	Project      string            // compose project the bootstrap container belongs to
	Service      string            // service name within the project
	Instance     string            // instance suffix, "1" for compose parity
	Image        string            // bootstrap container image
	Cmd          []string          // command to run in the container
	ArtifactPath string            // host path proving bootstrap already ran
	Binds        map[string]string // map[hostPath]containerPath
	Privileged   bool
}

// ContainerName returns the deterministic bootstrap container name. Two
// processes racing to bootstrap compute the same name, so the engine's
// name uniqueness acts as the mutual exclusion.
func (c Config) ContainerName() string {
	return fmt.Sprintf("%s_%s_%s", c.Project, c.Service, c.Instance)
}

// Service implements the bootstrap singleton.
type Service struct {
	engine    out.ContainerEngine
	artifacts out.ArtifactStore
	events    out.EventPublisher
	config    Config
}

// NewService creates a new bootstrap service.
func NewService(engine out.ContainerEngine, artifacts out.ArtifactStore, events out.EventPublisher, config Config) *Service {
	return &Service{
		engine:    engine,
		artifacts: artifacts,
		events:    events,
		config:    config,
	}
}

// EnsureBootstrapped runs the bootstrap container unless it already ran or
// is running elsewhere. app is the application whose startup triggered the
// check; when the platform project itself starts, bootstrap is skipped so
// it never recurses into itself.
func (s *Service) EnsureBootstrapped(ctx context.Context, app string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "EnsureBootstrapped",
		"app":                 app,
	})
	log := zerowrap.FromCtx(ctx)

	if app == s.config.Project {
		log.Debug().Msg("platform project itself starting, skipping bootstrap")
		return nil
	}

	exists, err := s.artifacts.Exists(s.config.ArtifactPath)
	if err != nil {
		return fmt.Errorf("failed to check bootstrap artifact: %w", err)
	}
	if exists {
		log.Debug().
			Str("artifact", s.config.ArtifactPath).
			Msg("bootstrap artifact present, nothing to do")
		return nil
	}

	name := s.config.ContainerName()

	// Only a live container holds the mutual exclusion; a stopped leftover
	// (daemon interrupted before auto-removal) must not block a re-run.
	running, err := s.engine.ListContainers(ctx, domain.ContainerFilter{Name: name, Running: true})
	if err != nil {
		return fmt.Errorf("failed to check for running bootstrap: %w", err)
	}
	if len(running) > 0 {
		log.Info().
			Str("container", name).
			Msg("bootstrap already in progress")
		return nil
	}

	log.Info().
		Str("container", name).
		Str("image", s.config.Image).
		Msg("starting platform bootstrap")

	if s.events != nil {
		if err := s.events.Publish(domain.EventBootstrapStarted, domain.BootstrapPayload{
			ContainerName: name,
			ArtifactPath:  s.config.ArtifactPath,
		}); err != nil {
			log.WrapErr(err, "failed to publish bootstrap started event")
		}
	}

	exitCode, err := s.engine.RunContainer(ctx, &domain.RunSpec{
		Name:  name,
		Image: s.config.Image,
		Cmd:   s.config.Cmd,
		Labels: map[string]string{
			"com.docker.compose.project": s.config.Project,
			"com.docker.compose.service": s.config.Service,
		},
		Binds:      s.config.Binds,
		Privileged: s.config.Privileged,
		AutoRemove: true,
	})
	if err != nil {
		// Lost the naming race to a concurrent bootstrap.
		if errors.Is(err, domain.ErrContainerExists) {
			log.Info().
				Str("container", name).
				Msg("bootstrap started concurrently")
			return nil
		}
		return fmt.Errorf("bootstrap container failed: %w", err)
	}
	if exitCode != 0 {
		return fmt.Errorf("bootstrap container %s exited with code %d", name, exitCode)
	}

	log.Info().
		Str("container", name).
		Msg("platform bootstrap complete")

	if s.events != nil {
		if err := s.events.Publish(domain.EventBootstrapCompleted, domain.BootstrapPayload{
			ContainerName: name,
			ArtifactPath:  s.config.ArtifactPath,
		}); err != nil {
			log.WrapErr(err, "failed to publish bootstrap completed event")
		}
	}

	return nil
}
