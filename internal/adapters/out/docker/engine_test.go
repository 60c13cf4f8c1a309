package docker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devharbor/netward/internal/domain"
)

func testEngine(t *testing.T, handler http.HandlerFunc) *Engine {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	host := strings.TrimPrefix(server.URL, "http://")
	cli, err := client.NewClientWithOpts(client.WithHost("tcp://"+host), client.WithVersion("1.41"), client.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	return NewEngineWithClient(cli)
}

func TestEngine_ListNetworks(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1.41/networks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Id": "net-1", "Name": "bridge", "Driver": "bridge", "Created": "2024-01-02T10:00:00Z"},
			{"Id": "net-2", "Name": "shop_default", "Driver": "bridge", "Created": "2024-03-04T10:00:00Z"}
		]`))
	})

	networks, err := engine.ListNetworks(context.Background())

	assert.NoError(t, err)
	require.Len(t, networks, 2)
	assert.Equal(t, "net-1", networks[0].ID)
	assert.Equal(t, "bridge", networks[0].Name)
	assert.Equal(t, 2024, networks[0].Created.Year())
	assert.Equal(t, "shop_default", networks[1].Name)
}

func TestEngine_InspectNetwork_WithContainers(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1.41/networks/net-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Id": "net-1",
			"Name": "old_project",
			"Containers": {"abc123": {"Name": "old_project-web-1"}}
		}`))
	})

	net, err := engine.InspectNetwork(context.Background(), "net-1")

	assert.NoError(t, err)
	assert.Equal(t, "old_project", net.Name)
	assert.True(t, net.InUse())
}

func TestEngine_InspectNetwork_NotFound(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "network net-404 not found"}`))
	})

	_, err := engine.InspectNetwork(context.Background(), "net-404")

	assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
}

func TestEngine_CreateNetwork_Conflict(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/networks/create", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "network with name netward_bridge already exists"}`))
	})

	err := engine.CreateNetwork(context.Background(), "netward_bridge", nil)

	assert.ErrorIs(t, err, domain.ErrNetworkExists)
}

func TestEngine_CreateNetwork_DefaultsToBridgeDriver(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name   string            `json:"Name"`
			Driver string            `json:"Driver"`
			Labels map[string]string `json:"Labels"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "netward_bridge", body.Name)
		assert.Equal(t, "bridge", body.Driver)
		assert.Equal(t, "true", body.Labels["netward.managed"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Id": "net-new"}`))
	})

	err := engine.CreateNetwork(context.Background(), "netward_bridge", nil)

	assert.NoError(t, err)
}

func TestEngine_RemoveNetwork_NotFoundIsBenign(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "network net-gone not found"}`))
	})

	err := engine.RemoveNetwork(context.Background(), "net-gone")

	assert.NoError(t, err)
}

func TestEngine_RemoveNetwork_ActiveEndpoints(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "network busy_net has active endpoints"}`))
	})

	err := engine.RemoveNetwork(context.Background(), "busy_net")

	assert.ErrorIs(t, err, domain.ErrNetworkInUse)
}

func TestEngine_ConnectNetwork_SendsAliases(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/networks/net-1/connect", r.URL.Path)

		var body struct {
			Container      string `json:"Container"`
			EndpointConfig struct {
				Aliases []string `json:"Aliases"`
			} `json:"EndpointConfig"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ctr-1", body.Container)
		assert.Equal(t, []string{"web.blog.internal", "blog.test"}, body.EndpointConfig.Aliases)

		w.WriteHeader(http.StatusOK)
	})

	err := engine.ConnectNetwork(context.Background(), "net-1", "ctr-1", []string{"web.blog.internal", "blog.test"})

	assert.NoError(t, err)
}

func TestEngine_DisconnectNetwork_NotConnected(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/networks/net-1/disconnect", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "container ctr-1 is not connected to network netward_bridge"}`))
	})

	err := engine.DisconnectNetwork(context.Background(), "net-1", "ctr-1")

	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestEngine_DisconnectNetwork_OtherErrorPropagates(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "driver failure"}`))
	})

	err := engine.DisconnectNetwork(context.Background(), "net-1", "ctr-1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotConnected)
}

func TestEngine_ListContainers_AnchorsNameFilter(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/json", r.URL.Path)

		var parsed map[string]map[string]bool
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("filters")), &parsed))
		assert.True(t, parsed["name"]["^/netward_ca_1$"], "name filter must be anchored, got %v", parsed["name"])

		// Running-only listings must not ask for stopped containers.
		assert.Empty(t, r.URL.Query().Get("all"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	containers, err := engine.ListContainers(context.Background(), domain.ContainerFilter{Name: "netward_ca_1", Running: true})

	assert.NoError(t, err)
	assert.Empty(t, containers)
}

func TestEngine_ListContainers_MapsComposeLabels(t *testing.T) {
	engine := testEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/json", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "filters")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"Id": "ctr-1",
				"Names": ["/blog-web-1"],
				"State": "running",
				"Labels": {
					"com.docker.compose.project": "blog",
					"com.docker.compose.service": "web"
				}
			}
		]`))
	})

	containers, err := engine.ListContainers(context.Background(), domain.ContainerFilter{App: "blog", Running: true})

	assert.NoError(t, err)
	require.Len(t, containers, 1)
	assert.Equal(t, "blog-web-1", containers[0].Name)
	assert.Equal(t, "blog", containers[0].App)
	assert.Equal(t, "web", containers[0].Service)
	assert.True(t, containers[0].Running)
}
