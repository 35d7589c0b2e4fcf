package kafka

import (
	"context"
	"errors"
	"log/slog"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
)

// Mux is an explicit handler registry mapping topic names to handler
// functions. It replaces annotation-driven listener dispatch: wiring is
// plain code and every route is testable without a broker.
type Mux struct {
	handlers map[string]Handler
	logger   *slog.Logger
}

// NewMux creates an empty registry.
func NewMux(logger *slog.Logger) *Mux {
	return &Mux{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Handle registers a handler for a topic. Registering a topic twice panics:
// routing is static wiring, a duplicate is a programming error.
func (m *Mux) Handle(topic string, h Handler) {
	if _, dup := m.handlers[topic]; dup {
		panic("kafka: duplicate handler for topic " + topic)
	}
	m.handlers[topic] = h
}

// Topics lists the registered topics, one consumer each.
func (m *Mux) Topics() []string {
	topics := make([]string, 0, len(m.handlers))
	for t := range m.handlers {
		topics = append(topics, t)
	}
	return topics
}

// Dispatch routes a message to the handler registered for topic. Malformed
// payloads are logged and dropped; other handler errors are logged and
// counted but also swallowed, so the offset always advances (log-and-drop,
// no dead-lettering).
func (m *Mux) Dispatch(topic string) Handler {
	h, ok := m.handlers[topic]
	return func(ctx context.Context, msg Message) error {
		if !ok {
			m.logger.Warn("no handler for topic", "topic", topic)
			return nil
		}

		err := h(ctx, msg)
		switch {
		case err == nil:
			observability.EventsConsumed.WithLabelValues(topic).Inc()
			return nil
		case errors.Is(err, apperr.ErrMalformedEvent):
			observability.EventsDropped.WithLabelValues(topic).Inc()
			m.logger.Error("malformed event dropped",
				"topic", topic,
				"event_id", msg.Headers["event_id"],
				"error", err,
			)
			return nil
		default:
			observability.EventsFailed.WithLabelValues(topic).Inc()
			m.logger.Error("event handler failed",
				"topic", topic,
				"event_id", msg.Headers["event_id"],
				"error", err,
			)
			return nil
		}
	}
}
