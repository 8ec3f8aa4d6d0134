package notification

import (
	"context"
	"log/slog"

	"quicksell/config"
	"quicksell/internal/domain/service"
	"quicksell/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit of tokens per multicast request.
const maxMulticastTokens = 500

// multicastSender is the subset of *messaging.Client used here.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var firebaseCfg *firebase.Config
	if cfg.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// Push sends the notification to any number of device tokens, split into
// multicast requests of at most 500 tokens.
func (s *firebaseService) Push(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.PushReport, error) {
	report := &service.PushReport{InvalidTokens: make([]string, 0)}

	for _, chunk := range chunkTokens(tokens, maxMulticastTokens) {
		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: notification.Title,
				Body:  notification.Body,
			},
			Data: notification.Data,
		})
		if err != nil {
			return report, errors.Wrap(err, "failed to send multicast notification")
		}

		report.Delivered += response.SuccessCount
		report.Failed += response.FailureCount
		report.InvalidTokens = append(report.InvalidTokens, collectInvalidTokens(chunk, response.Responses)...)
	}

	if report.Failed > 0 {
		s.logger.WarnContext(ctx, "Some push notifications were rejected",
			slog.Int("delivered", report.Delivered),
			slog.Int("failed", report.Failed),
			slog.Int("invalidTokens", len(report.InvalidTokens)),
		)
	}

	return report, nil
}

// collectInvalidTokens returns the tokens whose send response reports an invalid or
// unregistered registration token.
func collectInvalidTokens(tokens []string, responses []*messaging.SendResponse) []string {
	invalid := make([]string, 0)
	for idx, sendResponse := range responses {
		if idx >= len(tokens) || sendResponse == nil || sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalid = append(invalid, tokens[idx])
		}
	}

	return invalid
}

func chunkTokens(tokens []string, size int) [][]string {
	chunks := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		chunks = append(chunks, tokens[start:end])
	}

	return chunks
}
