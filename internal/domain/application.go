package domain

import (
	"fmt"
	"strings"
)

// InternalTLD is the suffix of every platform-internal hostname.
const InternalTLD = "internal"

// Application describes a project managed by the platform: its name and
// the services it declares.
type Application struct {
	Name     string
	Services []Service
}

// Service is a single service declared by an application.
type Service struct {
	Name           string
	ProxyHostnames []string
}

// DefaultNetworkName returns the name of the application's own compose
// network. These names are reserved and never pruned.
func (a Application) DefaultNetworkName() string {
	return a.Name + "_default"
}

// InternalHostname derives the platform-internal DNS name for a service
// of an application.
func InternalHostname(service, app string) string {
	return fmt.Sprintf("%s.%s.%s", service, app, InternalTLD)
}

// AliasSet computes the ordered, deduplicated alias list for a service's
// endpoint on the shared bridge network. The internal hostname always comes
// first; declared proxy hostnames follow with empties dropped.
func (a Application) AliasSet(service string) []string {
	base := InternalHostname(service, a.Name)
	aliases := []string{base}
	seen := map[string]struct{}{base: {}}

	for _, svc := range a.Services {
		if svc.Name != service {
			continue
		}
		for _, host := range svc.ProxyHostnames {
			host = strings.TrimSpace(host)
			if host == "" {
				continue
			}
			if _, ok := seen[host]; ok {
				continue
			}
			seen[host] = struct{}{}
			aliases = append(aliases, host)
		}
	}

	return aliases
}

// AppInfo is the reported view of an application, as returned by info
// queries. It mirrors Application but carries the resolved hostname lists.
type AppInfo struct {
	Name     string
	Services []ServiceInfo
}

// ServiceInfo is a single service entry in an AppInfo.
type ServiceInfo struct {
	Service   string
	Hostnames []string
}
