package notification

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"quicksell/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	batches [][]string
	err     error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, message.Tokens)

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range message.Tokens {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{
		SuccessCount: len(message.Tokens),
		Responses:    responses,
	}, nil
}

func newTestService(sender multicastSender) *firebaseService {
	return &firebaseService{
		client: sender,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestChunkTokens(t *testing.T) {
	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = strconv.Itoa(i)
	}

	chunks := chunkTokens(tokens, maxMulticastTokens)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 201)
	assert.Equal(t, "1200", chunks[2][200])
	assert.Empty(t, chunkTokens(nil, maxMulticastTokens))
}

func TestFirebaseService_Push_SplitsLargeBatches(t *testing.T) {
	sender := &fakeSender{}
	srv := newTestService(sender)

	tokens := make([]string, 750)
	for i := range tokens {
		tokens[i] = "token-" + strconv.Itoa(i)
	}

	report, err := srv.Push(context.Background(), tokens, &service.PushNotification{Title: "New message", Body: "Hi"})

	require.NoError(t, err)
	assert.Equal(t, 750, report.Delivered)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.InvalidTokens)
	require.Len(t, sender.batches, 2)
	assert.Len(t, sender.batches[0], 500)
	assert.Len(t, sender.batches[1], 250)
}

func TestFirebaseService_Push_Empty(t *testing.T) {
	sender := &fakeSender{}
	srv := newTestService(sender)

	report, err := srv.Push(context.Background(), nil, &service.PushNotification{Title: "title"})

	require.NoError(t, err)
	assert.Zero(t, report.Delivered)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.InvalidTokens)
	assert.Empty(t, sender.batches)
}

func TestFirebaseService_Push_TransportError(t *testing.T) {
	srv := newTestService(&fakeSender{err: errors.New("quota exceeded")})

	_, err := srv.Push(context.Background(), []string{"a"}, &service.PushNotification{Title: "title"})

	assert.ErrorContains(t, err, "failed to send multicast notification")
}

func TestNoopService_Push(t *testing.T) {
	srv := NewNoopService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	report, err := srv.Push(context.Background(), []string{"a", "b"}, &service.PushNotification{Title: "title"})

	require.NoError(t, err)
	assert.Zero(t, report.Delivered)
	assert.Empty(t, report.InvalidTokens)
}

func TestCollectInvalidTokens_IgnoresGenericFailures(t *testing.T) {
	responses := []*messaging.SendResponse{
		{Success: true},
		{Error: errors.New("internal")},
		nil,
	}

	assert.Empty(t, collectInvalidTokens([]string{"a", "b", "c"}, responses))
}
