// Package appfile loads application descriptors from the project directory.
//
// A descriptor is the narrow slice of an application's configuration the
// orchestrator needs: the project name, its services, and the proxy
// hostnames each service declares.
package appfile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devharbor/netward/internal/domain"
)

// DefaultName is the descriptor filename looked up in a project directory.
const DefaultName = ".netward.yml"

type descriptor struct {
	Name     string                 `yaml:"name"`
	Services map[string]serviceSpec `yaml:"services"`
}

type serviceSpec struct {
	Proxy []string `yaml:"proxy"`
}

// Load reads an application descriptor from path.
func Load(path string) (domain.Application, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Application{}, fmt.Errorf("failed to read app descriptor: %w", err)
	}
	return Parse(data)
}

// Parse decodes an application descriptor from raw YAML.
func Parse(data []byte) (domain.Application, error) {
	var desc descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return domain.Application{}, fmt.Errorf("failed to parse app descriptor: %w", err)
	}

	desc.Name = strings.TrimSpace(desc.Name)
	if desc.Name == "" {
		return domain.Application{}, fmt.Errorf("app descriptor: %w: name is required", domain.ErrInvalidConfig)
	}

	names := make([]string, 0, len(desc.Services))
	for name := range desc.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	app := domain.Application{Name: desc.Name}
	for _, name := range names {
		app.Services = append(app.Services, domain.Service{
			Name:           name,
			ProxyHostnames: desc.Services[name].Proxy,
		})
	}

	return app, nil
}
