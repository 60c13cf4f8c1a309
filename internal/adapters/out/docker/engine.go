// Package docker implements the container engine adapter using the Docker API.
package docker

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/devharbor/netward/internal/domain"
)

// Compose-compatible labels identifying which project and service a
// container belongs to. The platform stamps every container it starts with
// these, so the orchestrator can filter by application.
const (
	labelProject = "com.docker.compose.project"
	labelService = "com.docker.compose.service"
)

// Engine implements the ContainerEngine interface using the Docker API.
type Engine struct {
	client *client.Client
}

// NewEngine creates a new Docker engine adapter.
func NewEngine() (*Engine, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Engine{
		client: cli,
	}, nil
}

// NewEngineWithClient creates a new Docker engine adapter with a custom client (for testing).
func NewEngineWithClient(cli *client.Client) *Engine {
	return &Engine{
		client: cli,
	}
}

// Close releases the underlying HTTP client.
func (e *Engine) Close() error {
	return e.client.Close()
}

// Ping checks if the Docker daemon is responsive.
func (e *Engine) Ping(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "Ping",
	})
	log := zerowrap.FromCtx(ctx)

	if _, err := e.client.Ping(ctx); err != nil {
		return log.WrapErr(fmt.Errorf("%w: %v", domain.ErrEngineUnavailable, err), "Docker ping failed")
	}
	return nil
}

// ListNetworks lists all Docker networks.
func (e *Engine) ListNetworks(ctx context.Context) ([]*domain.Network, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "ListNetworks",
	})
	log := zerowrap.FromCtx(ctx)

	networks, err := e.client.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list networks")
	}

	result := make([]*domain.Network, 0, len(networks))
	for _, net := range networks {
		result = append(result, toDomainNetwork(net))
	}

	return result, nil
}

// InspectNetwork inspects a single network, including its attached containers.
func (e *Engine) InspectNetwork(ctx context.Context, id string) (*domain.Network, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "InspectNetwork",
		zerowrap.FieldEntityID: id,
	})
	log := zerowrap.FromCtx(ctx)

	resp, err := e.client.NetworkInspect(ctx, id, network.InspectOptions{})
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, domain.ErrNetworkNotFound
		}
		return nil, log.WrapErr(err, "failed to inspect network")
	}

	return toDomainNetwork(resp), nil
}

// CreateNetwork creates a new Docker network.
func (e *Engine) CreateNetwork(ctx context.Context, name string, options map[string]string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	// Set default driver to bridge if not specified
	driver := "bridge"
	if driverOption, exists := options["driver"]; exists {
		driver = driverOption
	}

	createOptions := network.CreateOptions{
		Driver: driver,
		Labels: map[string]string{
			"netward.managed": "true",
		},
	}

	// Add any additional options to labels
	for key, value := range options {
		if key != "driver" {
			createOptions.Labels["netward."+key] = value
		}
	}

	_, err := e.client.NetworkCreate(ctx, name, createOptions)
	if err != nil {
		if cerrdefs.IsConflict(err) || cerrdefs.IsAlreadyExists(err) {
			return domain.ErrNetworkExists
		}
		return log.WrapErr(err, "failed to create network")
	}

	log.Info().Str("driver", driver).Msg("network created")
	return nil
}

// RemoveNetwork removes a Docker network by id or name.
func (e *Engine) RemoveNetwork(ctx context.Context, id string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "RemoveNetwork",
		zerowrap.FieldEntityID: id,
	})
	log := zerowrap.FromCtx(ctx)

	err := e.client.NetworkRemove(ctx, id)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			log.Debug().Msg("network not found, already removed")
			return nil
		}
		if cerrdefs.IsPermissionDenied(err) || strings.Contains(err.Error(), "active endpoints") {
			return domain.ErrNetworkInUse
		}
		return log.WrapErr(err, "failed to remove network")
	}

	log.Info().Msg("network removed")
	return nil
}

// ListContainers lists containers matching the filter.
func (e *Engine) ListContainers(ctx context.Context, filter domain.ContainerFilter) ([]*domain.Container, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "ListContainers",
		"app":                 filter.App,
	})
	log := zerowrap.FromCtx(ctx)

	args := filters.NewArgs()
	if filter.App != "" {
		args.Add("label", labelProject+"="+filter.App)
	}
	if filter.Name != "" {
		// The engine's name filter is an unanchored regex; anchor it so
		// "netward_ca_1" never matches "netward_ca_10".
		args.Add("name", "^/"+regexp.QuoteMeta(filter.Name)+"$")
	}

	containers, err := e.client.ContainerList(ctx, container.ListOptions{
		All:     !filter.Running,
		Filters: args,
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list containers")
	}

	result := make([]*domain.Container, 0, len(containers))
	for _, c := range containers {
		// Get the primary name (remove leading slash)
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		result = append(result, &domain.Container{
			ID:      c.ID,
			Name:    name,
			App:     c.Labels[labelProject],
			Service: c.Labels[labelService],
			Running: c.State == "running",
			Labels:  c.Labels,
		})
	}

	return result, nil
}

// RunContainer creates and starts a one-shot container, waits for it to
// finish, and returns its exit code. With AutoRemove set the wait condition
// is the container's removal, which carries the exit code in its body.
func (e *Engine) RunContainer(ctx context.Context, spec *domain.RunSpec) (int, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "RunContainer",
		"container_name":      spec.Name,
		"image":               spec.Image,
	})
	log := zerowrap.FromCtx(ctx)

	exposedPorts := make(nat.PortSet)
	portBindings := make(nat.PortMap)
	for _, port := range spec.Ports {
		containerPort := nat.Port(fmt.Sprintf("%d/tcp", port))
		exposedPorts[containerPort] = struct{}{}
		portBindings[containerPort] = []nat.PortBinding{
			{
				HostIP:   "0.0.0.0",
				HostPort: "0", // Docker will assign a random available port
			},
		}
	}

	var binds []string
	for hostPath, containerPath := range spec.Binds {
		binds = append(binds, fmt.Sprintf("%s:%s", hostPath, containerPath))
	}

	containerConfig := &container.Config{
		Image:        spec.Image,
		Cmd:          spec.Cmd,
		Env:          spec.Env,
		Labels:       spec.Labels,
		ExposedPorts: exposedPorts,
	}

	hostConfig := &container.HostConfig{
		AutoRemove:   spec.AutoRemove,
		Binds:        binds,
		Privileged:   spec.Privileged,
		PortBindings: portBindings,
	}

	resp, err := e.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, spec.Name)
	if err != nil {
		if cerrdefs.IsConflict(err) {
			return 0, domain.ErrContainerExists
		}
		return 0, log.WrapErr(err, "failed to create container")
	}

	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("container created")

	condition := container.WaitConditionNotRunning
	if spec.AutoRemove {
		condition = container.WaitConditionRemoved
	}
	statusCh, errCh := e.client.ContainerWait(ctx, resp.ID, condition)

	if err := e.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return 0, log.WrapErr(err, "failed to start container")
	}

	select {
	case err := <-errCh:
		return 0, log.WrapErr(err, "failed to wait for container")
	case status := <-statusCh:
		if status.Error != nil {
			return int(status.StatusCode), fmt.Errorf("container wait error: %s", status.Error.Message)
		}
		log.Info().Int("exit_code", int(status.StatusCode)).Msg("container finished")
		return int(status.StatusCode), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// ConnectNetwork connects a container to a network with the given aliases.
func (e *Engine) ConnectNetwork(ctx context.Context, networkID, containerID string, aliases []string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "ConnectNetwork",
		"container":           containerID,
		"network":             networkID,
	})
	log := zerowrap.FromCtx(ctx)

	err := e.client.NetworkConnect(ctx, networkID, containerID, &network.EndpointSettings{
		Aliases: aliases,
	})
	if err != nil {
		if cerrdefs.IsConflict(err) || strings.Contains(err.Error(), "already exists in network") {
			return domain.ErrAlreadyConnected
		}
		return log.WrapErr(err, "failed to connect container to network")
	}

	log.Info().Strs("aliases", aliases).Msg("container connected to network")
	return nil
}

// DisconnectNetwork disconnects a container from a network.
//
// A container that is not a member of the network maps to
// domain.ErrNotConnected. Depending on the daemon version this surfaces as a
// not-found endpoint or a forbidden response with an "is not connected"
// message; both are folded into the sentinel so callers match structurally.
func (e *Engine) DisconnectNetwork(ctx context.Context, networkID, containerID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "DisconnectNetwork",
		"container":           containerID,
		"network":             networkID,
	})
	log := zerowrap.FromCtx(ctx)

	err := e.client.NetworkDisconnect(ctx, networkID, containerID, false)
	if err != nil {
		if cerrdefs.IsNotFound(err) || strings.Contains(err.Error(), "is not connected") {
			return domain.ErrNotConnected
		}
		return log.WrapErr(err, "failed to disconnect container from network")
	}

	log.Info().Msg("container disconnected from network")
	return nil
}

func toDomainNetwork(net network.Inspect) *domain.Network {
	var containers []string
	for containerID := range net.Containers {
		containers = append(containers, containerID)
	}

	return &domain.Network{
		ID:         net.ID,
		Name:       net.Name,
		Driver:     net.Driver,
		Created:    net.Created,
		Containers: containers,
		Labels:     net.Labels,
	}
}
