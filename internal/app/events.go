package app

import (
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/devharbor/netward/internal/boundaries/out"
	"github.com/devharbor/netward/internal/domain"
)

// eventLogHandler records every published lifecycle event. It gives the
// operator a trace of pruning, bridge creation, bootstrap and attachments
// without any command needing to log them itself.
type eventLogHandler struct {
	log zerowrap.Logger
}

func newEventLogHandler(log zerowrap.Logger) *eventLogHandler {
	return &eventLogHandler{log: log}
}

// Handle logs the event with its payload.
func (h *eventLogHandler) Handle(event domain.Event) error {
	h.log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldHandler, "eventlog").
		Str(zerowrap.FieldEvent, string(event.Type)).
		Str("event_id", event.ID).
		Str("payload", fmt.Sprintf("%+v", event.Data)).
		Msg("lifecycle event")
	return nil
}

// CanHandle accepts every event type.
func (h *eventLogHandler) CanHandle(domain.EventType) bool {
	return true
}

// registerEventHandlers subscribes the application's event consumers.
func registerEventHandlers(bus out.EventSubscriber, log zerowrap.Logger) error {
	if err := bus.Subscribe(newEventLogHandler(log)); err != nil {
		return fmt.Errorf("failed to subscribe event log handler: %w", err)
	}
	return nil
}
