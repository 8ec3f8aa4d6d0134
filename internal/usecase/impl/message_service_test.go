package impl

import (
	"context"
	"testing"

	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/service"
	mockRepo "quicksell/internal/mocks/repository"
	mockSvc "quicksell/internal/mocks/service"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service     usecase.MessageUsecase
	chatRepo    *mockRepo.MockChatRepository
	messageRepo *mockRepo.MockMessageRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	notifier    *mockSvc.MockNotificationService
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	fx := messageServiceFixtures{
		chatRepo:    mockRepo.NewMockChatRepository(t),
		messageRepo: mockRepo.NewMockMessageRepository(t),
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		notifier:    mockSvc.NewMockNotificationService(t),
	}
	fx.service = NewMessageService(MessageServiceParams{
		ChatRepo:    fx.chatRepo,
		MessageRepo: fx.messageRepo,
		DeviceRepo:  fx.deviceRepo,
		Notifier:    fx.notifier,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func newTestChat() *entity.Chat {
	creatorID := uuid.New()
	interlocutorID := uuid.New()

	return &entity.Chat{
		ID:                  uuid.New(),
		CreatorID:           creatorID,
		InterlocutorID:      interlocutorID,
		Subject:             "Bike",
		CreatorProfile:      &entity.Profile{UserID: creatorID, FullName: "Buyer"},
		InterlocutorProfile: &entity.Profile{UserID: interlocutorID, FullName: "Seller"},
	}
}

func TestMessageService_SendMessage_NotifiesCounterpart(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()
	chat := newTestChat()
	good := &entity.Device{ID: uuid.New(), FCMID: "good", IsActive: true}
	stale := &entity.Device{ID: uuid.New(), FCMID: "stale", IsActive: true, FailsCount: 2}

	fx.chatRepo.EXPECT().FindByID(ctx, chat.ID).Return(chat, nil)
	fx.messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveByOwner(ctx, chat.InterlocutorID).Return([]*entity.Device{good, stale}, nil)
	fx.notifier.EXPECT().Push(mock.Anything, []string{"good", "stale"}, &service.PushNotification{
		Title: "Buyer",
		Body:  "Is it still available?",
		Data:  map[string]string{"type": "chat_message", "chat_id": codec.EncodeIdentifier(chat.ID)},
	}).Return(&service.PushReport{Delivered: 1, Failed: 1, InvalidTokens: []string{"stale"}}, nil)
	fx.deviceRepo.EXPECT().Update(ctx, stale).Return(nil)

	message, err := fx.service.SendMessage(ctx, chat.CreatorID, chat.ID, &usecase.SendMessageInput{Text: "Is it still available?"})

	require.NoError(t, err)
	assert.Equal(t, chat.CreatorID, message.AuthorID)
	assert.True(t, message.IsAuthoredBy(chat.CreatorID))
	assert.False(t, message.IsAuthoredBy(chat.InterlocutorID))
	assert.Equal(t, 3, stale.FailsCount)
	assert.False(t, stale.IsActive)
	assert.True(t, good.IsActive)
}

func TestMessageService_SendMessage_PushFailureDoesNotFail(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()
	chat := newTestChat()

	fx.chatRepo.EXPECT().FindByID(ctx, chat.ID).Return(chat, nil)
	fx.messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveByOwner(ctx, chat.CreatorID).Return([]*entity.Device{{FCMID: "t"}}, nil)
	fx.notifier.EXPECT().Push(mock.Anything, mock.Anything, mock.MatchedBy(func(n *service.PushNotification) bool {
		return n.Title == "Seller" && n.Body == "Yes"
	})).Return(nil, errors.New("fcm unavailable"))

	_, err := fx.service.SendMessage(ctx, chat.InterlocutorID, chat.ID, &usecase.SendMessageInput{Text: "Yes"})

	assert.NoError(t, err)
}

func TestMessageService_SendMessage_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text", func(t *testing.T) {
		fx := createTestMessageService(t)

		_, err := fx.service.SendMessage(ctx, uuid.New(), uuid.New(), &usecase.SendMessageInput{Text: "   "})

		requireValidationError(t, err, "text", "This field may not be blank.")
	})

	t.Run("outsider", func(t *testing.T) {
		fx := createTestMessageService(t)
		chat := newTestChat()
		fx.chatRepo.EXPECT().FindByID(ctx, chat.ID).Return(chat, nil)

		_, err := fx.service.SendMessage(ctx, uuid.New(), chat.ID, &usecase.SendMessageInput{Text: "hello"})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestMessageService_ListMessages_Paginates(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()
	chat := newTestChat()
	messages := []*entity.Message{{ID: uuid.New()}}

	fx.chatRepo.EXPECT().FindByID(ctx, chat.ID).Return(chat, nil)
	fx.messageRepo.EXPECT().FindByChat(ctx, chat.ID, 10, 10).Return(messages, nil)

	got, err := fx.service.ListMessages(ctx, chat.CreatorID, chat.ID, &usecase.PageInput{Page: 2})

	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestMessageService_MarkRead(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()
	chat := newTestChat()

	fx.chatRepo.EXPECT().FindByID(ctx, chat.ID).Return(chat, nil)
	fx.messageRepo.EXPECT().MarkRead(ctx, chat.ID, chat.InterlocutorID).Return(int64(4), nil)

	count, err := fx.service.MarkRead(ctx, chat.InterlocutorID, chat.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
