package domain

import "time"

// EventType defines the type of event that occurred.
type EventType string

const (
	EventNetworkPruned      EventType = "network.pruned"
	EventBridgeCreated      EventType = "network.bridge_created"
	EventBootstrapStarted   EventType = "bootstrap.started"
	EventBootstrapCompleted EventType = "bootstrap.completed"
	EventContainerAttached  EventType = "container.attached"
)

// Event represents a domain event that occurred in the system.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Data      any
}

// NetworkPrunedPayload contains data for network.pruned events.
type NetworkPrunedPayload struct {
	NetworkID string
	Name      string
	Created   time.Time
}

// BridgeCreatedPayload contains data for network.bridge_created events.
type BridgeCreatedPayload struct {
	Name string
}

// BootstrapPayload contains data for bootstrap events.
type BootstrapPayload struct {
	ContainerName string
	ArtifactPath  string
}

// ContainerAttachedPayload contains data for container.attached events.
type ContainerAttachedPayload struct {
	ContainerID string
	App         string
	Service     string
	Network     string
	Aliases     []string
}
