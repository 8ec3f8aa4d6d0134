package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quicksell/config"
	"quicksell/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.ListingEvent {
	return &service.ListingEvent{
		RequestID:   "req-42",
		Type:        service.ListingEventCreated,
		ListingID:   "AAECAwQFBgcICQoLDA0ODw",
		SellerID:    "EBESExQVFhcYGRobHB0eHw",
		Title:       "Road bike",
		Price:       25000,
		Category:    "Bicycles",
		Coordinates: "55.75, 37.61",
		OccurredAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newTestLogger(),
	})
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishListingEvent(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_RejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: ProviderLocal},
			wantErr: "local endpoint is required for local provider",
		},
		{
			name:    "google without project",
			cfg:     &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "listings"},
			wantErr: "project ID is required for google provider",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "quicksell"},
			wantErr: "topic ID is required for google provider",
		},
		{
			name:    "rabbitmq without url",
			cfg:     &config.PubSubConfig{Provider: ProviderRabbitMQ},
			wantErr: "AMQP URL is required for rabbitmq provider",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newTestLogger(),
			})

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishListingEvent(context.Background(), event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localPushSubscription, received.Subscription)
	assert.Equal(t, service.ListingEventCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, event.ListingID, received.Message.Attributes["listing_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ListingEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	err := publisher.PublishListingEvent(context.Background(), newTestEvent())
	assert.EqualError(t, err, "push endpoint returned non-success status: 503")
}

type fakeAMQPChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *fakeAMQPChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.msg = msg

	return c.err
}

func (c *fakeAMQPChannel) Close() error {
	c.closed = true

	return nil
}

func TestRabbitMQPublisher_RoutesByEventType(t *testing.T) {
	channel := &fakeAMQPChannel{}
	publisher := &rabbitMQPublisher{
		channel:  channel,
		exchange: defaultRabbitMQExchange,
		logger:   newTestLogger(),
	}

	require.NoError(t, publisher.PublishListingEvent(context.Background(), newTestEvent()))

	assert.Equal(t, defaultRabbitMQExchange, channel.exchange)
	assert.Equal(t, service.ListingEventCreated, channel.key)
	assert.Equal(t, "application/json", channel.msg.ContentType)
	assert.Equal(t, amqp.Persistent, channel.msg.DeliveryMode)
	assert.Equal(t, "req-42", channel.msg.CorrelationId)
	assert.Equal(t, "AAECAwQFBgcICQoLDA0ODw", channel.msg.Headers["listing_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, channel.closed)

	err := publisher.PublishListingEvent(context.Background(), newTestEvent())
	assert.EqualError(t, err, "rabbitmq publisher is closed")
}

func TestRabbitMQPublisher_PublishError(t *testing.T) {
	publisher := &rabbitMQPublisher{
		channel:  &fakeAMQPChannel{err: errors.New("channel closed")},
		exchange: defaultRabbitMQExchange,
		logger:   newTestLogger(),
	}

	err := publisher.PublishListingEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "failed to publish listing event")
}
