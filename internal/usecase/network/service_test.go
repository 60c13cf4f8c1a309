package network

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devharbor/netward/internal/boundaries/out/mocks"
	"github.com/devharbor/netward/internal/domain"
)

func testCtx() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func testConfig() Config {
	return Config{
		BridgeName:   "netward_bridge",
		ProxyNetwork: "netward_proxy",
		Reserved:     []string{"bridge", "host", "none"},
		Ceiling:      4,
		PruneBatch:   2,
	}
}

func TestEnsureCapacity_BelowCeiling(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return([]*domain.Network{
		{ID: "n1", Name: "bridge"},
		{ID: "n2", Name: "netward_bridge"},
	}, nil)

	err := svc.EnsureCapacity(testCtx())

	require.NoError(t, err)
}

func TestEnsureCapacity_PrunesOldestUnused(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	events := mocks.NewMockEventPublisher(t)
	svc := NewService(engine, events, testConfig())

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	engine.EXPECT().ListNetworks(mock.Anything).Return([]*domain.Network{
		{ID: "nb", Name: "netward_bridge"},
		{ID: "n1", Name: "old1_default"},
		{ID: "n2", Name: "old2_default"},
		{ID: "n3", Name: "busy_default"},
	}, nil)
	engine.EXPECT().ListContainers(mock.Anything, domain.ContainerFilter{}).Return(nil, nil)

	// old2 is older than old1, so it goes first.
	engine.EXPECT().InspectNetwork(mock.Anything, "n1").
		Return(&domain.Network{ID: "n1", Name: "old1_default", Created: base.Add(time.Hour)}, nil)
	engine.EXPECT().InspectNetwork(mock.Anything, "n2").
		Return(&domain.Network{ID: "n2", Name: "old2_default", Created: base}, nil)
	engine.EXPECT().InspectNetwork(mock.Anything, "n3").
		Return(&domain.Network{ID: "n3", Name: "busy_default", Created: base, Containers: []string{"c1"}}, nil)

	var removed []string
	engine.EXPECT().RemoveNetwork(mock.Anything, mock.Anything).
		Run(func(_ context.Context, id string) { removed = append(removed, id) }).
		Return(nil).Times(2)

	events.EXPECT().Publish(domain.EventNetworkPruned, mock.Anything).Return(nil).Times(2)

	err := svc.EnsureCapacity(testCtx())

	require.NoError(t, err)
	assert.Equal(t, []string{"n2", "n1"}, removed)
}

func TestEnsureCapacity_ReservesKnownAndExtraApps(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return([]*domain.Network{
		{ID: "n1", Name: "blog_default"},
		{ID: "n2", Name: "shop_default"},
		{ID: "n3", Name: "stale_default"},
		{ID: "n4", Name: "netward_proxy"},
	}, nil)
	engine.EXPECT().ListContainers(mock.Anything, domain.ContainerFilter{}).Return([]*domain.Container{
		{ID: "c1", App: "blog"},
	}, nil)

	// blog reserved via the engine, shop via the caller; only stale remains.
	engine.EXPECT().InspectNetwork(mock.Anything, "n3").
		Return(&domain.Network{ID: "n3", Name: "stale_default", Created: time.Now()}, nil)
	engine.EXPECT().RemoveNetwork(mock.Anything, "n3").Return(nil)

	err := svc.EnsureCapacity(testCtx(), "shop")

	require.NoError(t, err)
}

func TestEnsureCapacity_SkipsInspectFailures(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return([]*domain.Network{
		{ID: "n1", Name: "a_default"},
		{ID: "n2", Name: "b_default"},
		{ID: "n3", Name: "c_default"},
		{ID: "n4", Name: "d_default"},
	}, nil)
	engine.EXPECT().ListContainers(mock.Anything, domain.ContainerFilter{}).Return(nil, nil)

	engine.EXPECT().InspectNetwork(mock.Anything, "n1").Return(nil, errors.New("inspect boom"))
	engine.EXPECT().InspectNetwork(mock.Anything, "n2").
		Return(&domain.Network{ID: "n2", Name: "b_default", Created: time.Now()}, nil)
	engine.EXPECT().InspectNetwork(mock.Anything, "n3").
		Return(&domain.Network{ID: "n3", Name: "c_default"}, nil) // no creation time
	engine.EXPECT().InspectNetwork(mock.Anything, "n4").
		Return(&domain.Network{ID: "n4", Name: "d_default", Created: time.Now()}, nil)

	engine.EXPECT().RemoveNetwork(mock.Anything, "n2").Return(nil)
	engine.EXPECT().RemoveNetwork(mock.Anything, "n4").Return(nil)

	err := svc.EnsureCapacity(testCtx())

	require.NoError(t, err)
}

func TestEnsureCapacity_RemoveFailureIsNonFatal(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return([]*domain.Network{
		{ID: "n1", Name: "a_default"},
		{ID: "n2", Name: "b_default"},
		{ID: "n3", Name: "c_default"},
		{ID: "n4", Name: "d_default"},
	}, nil)
	engine.EXPECT().ListContainers(mock.Anything, domain.ContainerFilter{}).Return(nil, nil)

	created := time.Now()
	for _, id := range []string{"n1", "n2", "n3", "n4"} {
		engine.EXPECT().InspectNetwork(mock.Anything, id).
			Return(&domain.Network{ID: id, Name: id + "_default", Created: created}, nil)
		created = created.Add(time.Minute)
	}

	engine.EXPECT().RemoveNetwork(mock.Anything, "n1").Return(errors.New("remove boom"))
	engine.EXPECT().RemoveNetwork(mock.Anything, "n2").Return(nil)

	err := svc.EnsureCapacity(testCtx())

	require.NoError(t, err)
}

func TestEnsureCapacity_ListError(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return(nil, errors.New("engine down"))

	err := svc.EnsureCapacity(testCtx())

	assert.Error(t, err)
}

func TestEnsureBridge_AlreadyExists(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return([]*domain.Network{
		{ID: "nb", Name: "netward_bridge"},
	}, nil)

	err := svc.EnsureBridge(testCtx())

	require.NoError(t, err)
}

func TestEnsureBridge_Creates(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	events := mocks.NewMockEventPublisher(t)
	svc := NewService(engine, events, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return(nil, nil)
	engine.EXPECT().CreateNetwork(mock.Anything, "netward_bridge", mock.Anything).Return(nil)
	events.EXPECT().Publish(domain.EventBridgeCreated, domain.BridgeCreatedPayload{Name: "netward_bridge"}).Return(nil)

	err := svc.EnsureBridge(testCtx())

	require.NoError(t, err)
}

func TestEnsureBridge_CreationRace(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return(nil, nil)
	engine.EXPECT().CreateNetwork(mock.Anything, "netward_bridge", mock.Anything).
		Return(domain.ErrNetworkExists)

	err := svc.EnsureBridge(testCtx())

	require.NoError(t, err)
}

func TestEnsureBridge_CreateError(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, testConfig())

	engine.EXPECT().ListNetworks(mock.Anything).Return(nil, nil)
	engine.EXPECT().CreateNetwork(mock.Anything, "netward_bridge", mock.Anything).
		Return(errors.New("create boom"))

	err := svc.EnsureBridge(testCtx())

	assert.Error(t, err)
}
