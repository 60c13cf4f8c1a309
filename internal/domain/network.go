package domain

import "time"

// Network represents a container network and its endpoint state.
type Network struct {
	ID         string
	Name       string
	Driver     string
	Created    time.Time
	Containers []string
	Labels     map[string]string
}

// InUse reports whether the network has at least one attached container.
func (n *Network) InUse() bool {
	return len(n.Containers) > 0
}
