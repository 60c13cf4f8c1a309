package app

import (
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devharbor/netward/internal/adapters/out/eventbus"
	"github.com/devharbor/netward/internal/domain"
)

func TestEventLogHandler_AcceptsAllEvents(t *testing.T) {
	handler := newEventLogHandler(zerowrap.Default())

	for _, eventType := range []domain.EventType{
		domain.EventNetworkPruned,
		domain.EventBridgeCreated,
		domain.EventBootstrapStarted,
		domain.EventBootstrapCompleted,
		domain.EventContainerAttached,
	} {
		assert.True(t, handler.CanHandle(eventType))
	}

	assert.NoError(t, handler.Handle(domain.Event{
		ID:        "evt-1",
		Type:      domain.EventBridgeCreated,
		Timestamp: time.Now(),
		Data:      domain.BridgeCreatedPayload{Name: "netward_bridge"},
	}))
}

func TestRegisterEventHandlers(t *testing.T) {
	bus := eventbus.NewInMemory(10, zerowrap.Default())
	require.NoError(t, bus.Start())
	defer func() { _ = bus.Stop() }()

	require.NoError(t, registerEventHandlers(bus, zerowrap.Default()))

	// A published event reaches the subscribed handler without error.
	assert.NoError(t, bus.Publish(domain.EventNetworkPruned, domain.NetworkPrunedPayload{
		NetworkID: "n1",
		Name:      "old_default",
	}))
}
