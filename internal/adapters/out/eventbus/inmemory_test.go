package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devharbor/netward/internal/domain"
)

type recordingHandler struct {
	mu      sync.Mutex
	events  []domain.Event
	accepts domain.EventType
}

func (h *recordingHandler) Handle(event domain.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return nil
}

func (h *recordingHandler) CanHandle(eventType domain.EventType) bool {
	return eventType == h.accepts
}

func (h *recordingHandler) received() []domain.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.Event(nil), h.events...)
}

func TestInMemory_PublishAndHandle(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	require.NoError(t, bus.Start())
	defer func() { _ = bus.Stop() }()

	handler := &recordingHandler{accepts: domain.EventNetworkPruned}
	require.NoError(t, bus.Subscribe(handler))

	payload := domain.NetworkPrunedPayload{NetworkID: "n1", Name: "old_default"}
	require.NoError(t, bus.Publish(domain.EventNetworkPruned, payload))

	assert.Eventually(t, func() bool {
		return len(handler.received()) == 1
	}, time.Second, 10*time.Millisecond)

	events := handler.received()
	assert.Equal(t, domain.EventNetworkPruned, events[0].Type)
	assert.Equal(t, payload, events[0].Data)
	assert.NotEmpty(t, events[0].ID)
}

func TestInMemory_SkipsHandlersThatCannotHandle(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	require.NoError(t, bus.Start())
	defer func() { _ = bus.Stop() }()

	pruned := &recordingHandler{accepts: domain.EventNetworkPruned}
	attached := &recordingHandler{accepts: domain.EventContainerAttached}
	require.NoError(t, bus.Subscribe(pruned))
	require.NoError(t, bus.Subscribe(attached))

	require.NoError(t, bus.Publish(domain.EventContainerAttached, nil))

	assert.Eventually(t, func() bool {
		return len(attached.received()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, pruned.received())
}

func TestInMemory_Unsubscribe(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())

	handler := &recordingHandler{accepts: domain.EventBridgeCreated}
	require.NoError(t, bus.Subscribe(handler))
	require.NoError(t, bus.Unsubscribe(handler))

	assert.Error(t, bus.Unsubscribe(handler))
}

func TestInMemory_PublishAfterStop(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	require.NoError(t, bus.Start())
	require.NoError(t, bus.Stop())

	assert.Error(t, bus.Publish(domain.EventBridgeCreated, nil))
}
