package notification

import (
	"context"
	"log/slog"

	"quicksell/internal/domain/service"
)

// noopService stands in for Firebase when push notifications are not configured.
type noopService struct {
	logger *slog.Logger
}

// NewNoopService creates a notification service that only logs what it would send
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

// Push reports every token as skipped.
func (s *noopService) Push(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.PushReport, error) {
	s.logger.DebugContext(ctx, "Push notifications disabled, skipping",
		slog.String("title", notification.Title),
		slog.Int("tokens", len(tokens)),
	)

	return &service.PushReport{}, nil
}
