package impl

import (
	"context"
	"log/slog"
	"strings"

	"quicksell/config"
	deliverycontext "quicksell/internal/delivery/context"
	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/lifecycle"
	"quicksell/internal/domain/repository"
	"quicksell/internal/domain/service"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxDeviceFailures = 5

	notificationTypeChatMessage = "chat_message"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	chatRepo          repository.ChatRepository
	messageRepo       repository.MessageRepository
	deviceRepo        repository.DeviceRepository
	notifier          service.NotificationService
	maxDeviceFailures int
	pages             pager
	logger            *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	MessageRepo repository.MessageRepository
	DeviceRepo  repository.DeviceRepository
	Notifier    service.NotificationService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	maxDeviceFailures := defaultMaxDeviceFailures
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.MaxDeviceFailures > 0 {
		maxDeviceFailures = params.Config.Notification.MaxDeviceFailures
	}

	return &messageService{
		chatRepo:          params.ChatRepo,
		messageRepo:       params.MessageRepo,
		deviceRepo:        params.DeviceRepo,
		notifier:          params.Notifier,
		maxDeviceFailures: maxDeviceFailures,
		pages:             newPager(params.Config),
		logger:            params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage stores the message and notifies the other participant's devices.
func (srv *messageService) SendMessage(ctx context.Context, userID, chatID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domainerrors.NewValidationError("text", "This field may not be blank.")
	}

	chat, err := findParticipantChat(ctx, srv.chatRepo, userID, chatID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ChatID:   chat.ID,
		AuthorID: userID,
		Text:     input.Text,
	}
	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	srv.notify(ctx, chat, message)

	return message, nil
}

// notify pushes the message to the counterpart. Delivery problems never fail the send.
func (srv *messageService) notify(ctx context.Context, chat *entity.Chat, message *entity.Message) {
	recipientID := chat.CounterpartOf(message.AuthorID)
	if recipientID == message.AuthorID {
		return
	}

	devices, err := srv.deviceRepo.FindActiveByOwner(ctx, recipientID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load recipient devices", slog.Any("userID", recipientID), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	byToken := make(map[string]*entity.Device, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMID)
		byToken[device.FCMID] = device
	}

	title := chat.Subject
	if sender := chat.InterlocutorFor(recipientID); sender != nil && sender.FullName != "" {
		title = sender.FullName
	}
	notification := &service.PushNotification{
		Title: title,
		Body:  message.Text,
		Data: map[string]string{
			"type":    notificationTypeChatMessage,
			"chat_id": codec.EncodeIdentifier(chat.ID),
		},
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	report, err := srv.notifier.Push(sendCtx, tokens, notification)
	if err != nil {
		srv.log(ctx).Warn("Failed to push chat message", slog.Any("chatID", chat.ID), slog.Any("error", err))

		return
	}
	srv.log(ctx).Debug("Pushed chat message", slog.Int("delivered", report.Delivered), slog.Int("failed", report.Failed))

	for _, token := range report.InvalidTokens {
		device, ok := byToken[token]
		if !ok {
			continue
		}

		device.RecordFailure(srv.maxDeviceFailures)
		if err := srv.deviceRepo.Update(ctx, device); err != nil {
			srv.log(ctx).Warn("Failed to record device failure", slog.Any("deviceID", device.ID), slog.Any("error", err))
		}
	}
}

// ListMessages returns a page of the chat's messages, newest first.
func (srv *messageService) ListMessages(ctx context.Context, userID, chatID uuid.UUID, page *usecase.PageInput) ([]*entity.Message, error) {
	chat, err := findParticipantChat(ctx, srv.chatRepo, userID, chatID)
	if err != nil {
		return nil, err
	}

	var request usecase.PageInput
	if page != nil {
		request = *page
	}
	limit, offset := srv.pages.limitOffset(request)

	messages, err := srv.messageRepo.FindByChat(ctx, chat.ID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// MarkRead flags the counterpart's messages as read.
func (srv *messageService) MarkRead(ctx context.Context, userID, chatID uuid.UUID) (int64, error) {
	chat, err := findParticipantChat(ctx, srv.chatRepo, userID, chatID)
	if err != nil {
		return 0, err
	}

	count, err := srv.messageRepo.MarkRead(ctx, chat.ID, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark messages read")
	}

	return count, nil
}
