package events_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/events"
)

type mockOutboxRepo struct {
	entries   []events.OutboxEntry
	published []string
	fetchErr  error
}

func (m *mockOutboxRepo) FetchUnpublished(_ context.Context, batchSize int) ([]events.OutboxEntry, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if len(m.entries) > batchSize {
		return m.entries[:batchSize], nil
	}
	return m.entries, nil
}

func (m *mockOutboxRepo) MarkPublished(_ context.Context, ids []string) error {
	m.published = append(m.published, ids...)
	return nil
}

type mockPublisher struct {
	sent    []string
	failOn  string
	lastKey string
}

func (m *mockPublisher) Publish(_ context.Context, topic, key string, _ []byte, _ map[string]string) error {
	if topic == m.failOn {
		return errors.New("broker unavailable")
	}
	m.sent = append(m.sent, topic)
	m.lastKey = key
	return nil
}

func entry(id, topic, key string) events.OutboxEntry {
	return events.OutboxEntry{
		ID:           id,
		Topic:        topic,
		PartitionKey: key,
		Payload:      []byte(`{}`),
		CreatedAt:    time.Now().UTC(),
	}
}

func TestRelayDrain(t *testing.T) {
	logger := slog.Default()

	t.Run("publishes and marks all entries", func(t *testing.T) {
		repo := &mockOutboxRepo{entries: []events.OutboxEntry{
			entry("e1", "loan.created", "loan-1"),
			entry("e2", "loan.approved", "loan-1"),
		}}
		pub := &mockPublisher{}

		relay := events.NewRelay(repo, pub, logger, time.Second, 100)
		require.NoError(t, relay.Drain(context.Background()))

		assert.Equal(t, []string{"loan.created", "loan.approved"}, pub.sent)
		assert.Equal(t, []string{"e1", "e2"}, repo.published)
		assert.Equal(t, "loan-1", pub.lastKey)
	})

	t.Run("stops at first publish failure to preserve ordering", func(t *testing.T) {
		repo := &mockOutboxRepo{entries: []events.OutboxEntry{
			entry("e1", "loan.created", "loan-1"),
			entry("e2", "loan.approved", "loan-1"),
			entry("e3", "loan.disbursed", "loan-1"),
		}}
		pub := &mockPublisher{failOn: "loan.approved"}

		relay := events.NewRelay(repo, pub, logger, time.Second, 100)
		require.NoError(t, relay.Drain(context.Background()))

		assert.Equal(t, []string{"loan.created"}, pub.sent)
		assert.Equal(t, []string{"e1"}, repo.published)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		repo := &mockOutboxRepo{fetchErr: errors.New("db down")}
		relay := events.NewRelay(repo, &mockPublisher{}, logger, time.Second, 100)
		assert.Error(t, relay.Drain(context.Background()))
	})

	t.Run("no-op on empty outbox", func(t *testing.T) {
		repo := &mockOutboxRepo{}
		pub := &mockPublisher{}
		relay := events.NewRelay(repo, pub, logger, time.Second, 100)
		require.NoError(t, relay.Drain(context.Background()))
		assert.Empty(t, pub.sent)
		assert.Empty(t, repo.published)
	})
}
