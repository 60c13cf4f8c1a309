package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// Adapters translate engine responses onto these sentinels so that use cases
// can distinguish benign races from real failures with errors.Is.
var (
	// Network errors
	ErrNetworkNotFound = errors.New("network not found")
	ErrNetworkExists   = errors.New("network already exists")
	ErrNetworkInUse    = errors.New("network has active endpoints")

	// Container errors
	ErrContainerNotFound = errors.New("container not found")
	ErrContainerExists   = errors.New("container already exists")

	// Endpoint errors
	ErrNotConnected     = errors.New("container is not connected to network")
	ErrAlreadyConnected = errors.New("container is already connected to network")

	// Engine errors
	ErrEngineUnavailable = errors.New("container engine unavailable")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
