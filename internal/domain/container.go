// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

// Container represents a container as seen by the orchestrator.
type Container struct {
	ID      string
	Name    string
	App     string // project the container belongs to
	Service string // service name within the project
	Running bool
	Labels  map[string]string
}

// ContainerFilter narrows a container listing.
// Zero-value fields are ignored.
type ContainerFilter struct {
	App     string // match containers of this project
	Name    string // match by container name
	Running bool   // only running containers; false includes stopped ones
}

// RunSpec holds configuration for a one-shot container run.
type RunSpec struct {
	Name       string
	Image      string
	Cmd        []string
	Env        []string
	Ports      []int
	Labels     map[string]string
	Binds      map[string]string // map[hostPath]containerPath
	Privileged bool
	AutoRemove bool
}
