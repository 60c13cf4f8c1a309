// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, etc.).
package out

import (
	"context"

	"github.com/devharbor/netward/internal/domain"
)

// ContainerEngine defines the contract for container engine operations the
// orchestrator needs. It abstracts the underlying runtime (Docker, Podman).
//
// Implementations translate engine-specific errors onto the domain sentinels
// (domain.ErrNetworkExists, domain.ErrNotConnected, ...) so callers never
// inspect error text.
type ContainerEngine interface {
	// Network operations
	ListNetworks(ctx context.Context) ([]*domain.Network, error)
	InspectNetwork(ctx context.Context, id string) (*domain.Network, error)
	CreateNetwork(ctx context.Context, name string, options map[string]string) error
	RemoveNetwork(ctx context.Context, id string) error

	// Container operations
	ListContainers(ctx context.Context, filter domain.ContainerFilter) ([]*domain.Container, error)
	// RunContainer runs a one-shot container attached to completion and
	// returns its exit code.
	RunContainer(ctx context.Context, spec *domain.RunSpec) (int, error)

	// Endpoint operations
	ConnectNetwork(ctx context.Context, networkID, containerID string, aliases []string) error
	DisconnectNetwork(ctx context.Context, networkID, containerID string) error

	// Ping checks that the engine is reachable.
	Ping(ctx context.Context) error
}
