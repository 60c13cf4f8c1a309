// Package network implements the shared network management use case: the
// capacity guard that keeps the engine below its network ceiling, and the
// idempotent shared bridge.
package network

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/devharbor/netward/internal/boundaries/out"
	"github.com/devharbor/netward/internal/domain"
)

// Config holds configuration needed by the network service.
type Config struct {
	BridgeName   string   // name of the shared bridge network
	ProxyNetwork string   // name of the reverse proxy's own network
	Reserved     []string // extra names never considered for pruning
	Ceiling      int      // engine network count at which pruning kicks in
	PruneBatch   int      // maximum networks removed per capacity pass
}

// Service implements network capacity and bridge management.
type Service struct {
	engine out.ContainerEngine
	events out.EventPublisher
	config Config
}

// NewService creates a new network service.
func NewService(engine out.ContainerEngine, events out.EventPublisher, config Config) *Service {
	return &Service{
		engine: engine,
		events: events,
		config: config,
	}
}

// EnsureCapacity frees network slots when the engine sits at or above its
// ceiling. It removes at most PruneBatch of the oldest networks that are
// neither reserved nor in use. extraApps names applications whose default
// networks must survive even if the engine does not know them yet.
//
// Pruning is best effort: a network that cannot be inspected or removed is
// skipped, never fatal.
func (s *Service) EnsureCapacity(ctx context.Context, extraApps ...string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "EnsureCapacity",
	})
	log := zerowrap.FromCtx(ctx)

	networks, err := s.engine.ListNetworks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}

	if len(networks) < s.config.Ceiling {
		log.Debug().
			Int(zerowrap.FieldCount, len(networks)).
			Int("ceiling", s.config.Ceiling).
			Msg("network count below ceiling, nothing to prune")
		return nil
	}

	log.Warn().
		Int(zerowrap.FieldCount, len(networks)).
		Int("ceiling", s.config.Ceiling).
		Msg("network ceiling reached, pruning unused networks")

	reserved, err := s.reservedNames(ctx, extraApps)
	if err != nil {
		return err
	}

	candidates := make([]*domain.Network, 0, len(networks))
	for _, nw := range networks {
		if _, ok := reserved[nw.Name]; ok {
			continue
		}
		// Summaries omit endpoint state; inspect for attached containers.
		inspected, err := s.engine.InspectNetwork(ctx, nw.ID)
		if err != nil {
			log.Warn().Err(err).
				Str("network", nw.Name).
				Msg("failed to inspect network, skipping")
			continue
		}
		if inspected.InUse() {
			continue
		}
		if inspected.Created.IsZero() {
			continue
		}
		candidates = append(candidates, inspected)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].Created.Equal(candidates[j].Created) {
			return candidates[i].Created.Before(candidates[j].Created)
		}
		return candidates[i].ID < candidates[j].ID
	})

	batch := s.config.PruneBatch
	if batch > len(candidates) {
		batch = len(candidates)
	}

	pruned := 0
	for _, nw := range candidates[:batch] {
		if err := s.engine.RemoveNetwork(ctx, nw.ID); err != nil {
			log.Warn().Err(err).
				Str("network", nw.Name).
				Msg("failed to remove network, skipping")
			continue
		}
		pruned++
		log.Info().
			Str("network", nw.Name).
			Str(zerowrap.FieldEntityID, nw.ID).
			Msg("pruned unused network")

		if s.events != nil {
			if err := s.events.Publish(domain.EventNetworkPruned, domain.NetworkPrunedPayload{
				NetworkID: nw.ID,
				Name:      nw.Name,
				Created:   nw.Created,
			}); err != nil {
				log.WrapErr(err, "failed to publish network pruned event")
			}
		}
	}

	log.Info().
		Int(zerowrap.FieldCount, pruned).
		Int("candidates", len(candidates)).
		Msg("network capacity pass complete")

	return nil
}

// EnsureBridge creates the shared bridge network if it does not exist.
func (s *Service) EnsureBridge(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "EnsureBridge",
	})
	log := zerowrap.FromCtx(ctx)

	networks, err := s.engine.ListNetworks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}

	for _, nw := range networks {
		if nw.Name == s.config.BridgeName {
			log.Debug().
				Str("network", nw.Name).
				Msg("shared bridge already exists")
			return nil
		}
	}

	if err := s.engine.CreateNetwork(ctx, s.config.BridgeName, nil); err != nil {
		// Another process won the creation race.
		if errors.Is(err, domain.ErrNetworkExists) {
			log.Debug().
				Str("network", s.config.BridgeName).
				Msg("shared bridge created concurrently")
			return nil
		}
		return fmt.Errorf("failed to create shared bridge %s: %w", s.config.BridgeName, err)
	}

	log.Info().
		Str("network", s.config.BridgeName).
		Msg("created shared bridge network")

	if s.events != nil {
		if err := s.events.Publish(domain.EventBridgeCreated, domain.BridgeCreatedPayload{
			Name: s.config.BridgeName,
		}); err != nil {
			log.WrapErr(err, "failed to publish bridge created event")
		}
	}

	return nil
}

// reservedNames builds the set of network names that must never be pruned:
// builtins, the shared bridge, the proxy network, configured extras, and the
// default network of every application known to the engine or named by the
// caller.
func (s *Service) reservedNames(ctx context.Context, extraApps []string) (map[string]struct{}, error) {
	reserved := make(map[string]struct{})
	for _, name := range s.config.Reserved {
		reserved[name] = struct{}{}
	}
	if s.config.BridgeName != "" {
		reserved[s.config.BridgeName] = struct{}{}
	}
	if s.config.ProxyNetwork != "" {
		reserved[s.config.ProxyNetwork] = struct{}{}
	}

	containers, err := s.engine.ListContainers(ctx, domain.ContainerFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	for _, c := range containers {
		if c.App == "" {
			continue
		}
		reserved[domain.Application{Name: c.App}.DefaultNetworkName()] = struct{}{}
	}

	for _, app := range extraApps {
		app = strings.TrimSpace(app)
		if app == "" {
			continue
		}
		reserved[domain.Application{Name: app}.DefaultNetworkName()] = struct{}{}
	}

	return reserved, nil
}
