package kafka_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/pkg/kafka"
)

func TestMuxDispatch(t *testing.T) {
	logger := slog.Default()

	t.Run("routes to the registered handler", func(t *testing.T) {
		mux := kafka.NewMux(logger)
		var got []byte
		mux.Handle("loan.created", func(_ context.Context, msg kafka.Message) error {
			got = msg.Value
			return nil
		})

		err := mux.Dispatch("loan.created")(context.Background(), kafka.Message{Value: []byte(`{"loanId":"l1"}`)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"loanId":"l1"}`, string(got))
	})

	t.Run("drops malformed events without error", func(t *testing.T) {
		mux := kafka.NewMux(logger)
		mux.Handle("loan.created", func(context.Context, kafka.Message) error {
			return apperr.MalformedEvent("not json")
		})
		err := mux.Dispatch("loan.created")(context.Background(), kafka.Message{Value: []byte("not json")})
		assert.NoError(t, err)
	})

	t.Run("swallows handler failures so the offset advances", func(t *testing.T) {
		mux := kafka.NewMux(logger)
		mux.Handle("payment.received", func(context.Context, kafka.Message) error {
			return errors.New("db down")
		})
		err := mux.Dispatch("payment.received")(context.Background(), kafka.Message{})
		assert.NoError(t, err)
	})

	t.Run("unknown topic is a warning, not a failure", func(t *testing.T) {
		mux := kafka.NewMux(logger)
		err := mux.Dispatch("unknown.topic")(context.Background(), kafka.Message{})
		assert.NoError(t, err)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		mux := kafka.NewMux(logger)
		mux.Handle("loan.created", func(context.Context, kafka.Message) error { return nil })
		assert.Panics(t, func() {
			mux.Handle("loan.created", func(context.Context, kafka.Message) error { return nil })
		})
	})
}
