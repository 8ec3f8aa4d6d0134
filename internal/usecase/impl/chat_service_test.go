package impl

import (
	"context"
	"testing"
	"time"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	mockRepo "quicksell/internal/mocks/repository"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service     usecase.ChatUsecase
	txManager   *mockRepo.MockTransactionManager
	chatRepo    *mockRepo.MockChatRepository
	messageRepo *mockRepo.MockMessageRepository
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	fx := chatServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		chatRepo:    mockRepo.NewMockChatRepository(t),
		messageRepo: mockRepo.NewMockMessageRepository(t),
	}
	fx.service = NewChatService(ChatServiceParams{
		TxManager:   fx.txManager,
		ChatRepo:    fx.chatRepo,
		MessageRepo: fx.messageRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

// chatStore emulates the unique (creator, interlocutor, listing) triple across transactions.
type chatStore struct {
	chats map[[3]uuid.UUID]*entity.Chat
}

func (s *chatStore) findOrCreate(_ context.Context, creatorID, interlocutorID, listingID uuid.UUID) (*entity.Chat, bool, error) {
	key := [3]uuid.UUID{creatorID, interlocutorID, listingID}
	if chat, ok := s.chats[key]; ok {
		return chat, false, nil
	}

	chat := &entity.Chat{ID: uuid.New(), CreatorID: creatorID, InterlocutorID: interlocutorID, ListingID: listingID}
	s.chats[key] = chat

	return chat, true, nil
}

func TestChatService_CreateChat_IsIdempotent(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	viewerID := uuid.New()
	target := &entity.Profile{ID: uuid.New(), UserID: uuid.New()}
	listing := &entity.Listing{ID: uuid.New(), Title: "Bike", Status: entity.ListingStatusActive}
	store := &chatStore{chats: map[[3]uuid.UUID]*entity.Chat{}}
	subjectWrites := 0

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			listingRepo := mockRepo.NewMockListingRepository(t)
			chatRepo := mockRepo.NewMockChatRepository(t)
			messageRepo := mockRepo.NewMockMessageRepository(t)
			factory.EXPECT().ProfileRepo().Return(profileRepo)
			factory.EXPECT().ListingRepo().Return(listingRepo)
			factory.EXPECT().ChatRepo().Return(chatRepo)
			factory.EXPECT().MessageRepo().Return(messageRepo)

			profileRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
			listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
			chatRepo.EXPECT().FindOrCreate(ctx, viewerID, target.UserID, listing.ID).RunAndReturn(store.findOrCreate)
			chatRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Chat")).
				RunAndReturn(func(context.Context, *entity.Chat) error {
					subjectWrites++

					return nil
				}).Maybe()
			messageRepo.EXPECT().FindLatestByChat(ctx, mock.Anything).Return(nil, repository.ErrMessageNotFound)

			return fn(factory)
		}).Twice()

	input := &usecase.CreateChatInput{ToProfileID: target.ID, ListingID: listing.ID}
	first, err := fx.service.CreateChat(ctx, viewerID, input)
	require.NoError(t, err)

	first.Chat.Subject = "Renamed"
	second, err := fx.service.CreateChat(ctx, viewerID, input)
	require.NoError(t, err)

	assert.Equal(t, first.Chat.ID, second.Chat.ID)
	assert.Equal(t, "Renamed", second.Chat.Subject)
	assert.Equal(t, 1, subjectWrites)
	assert.Nil(t, second.LatestMessage)
}

func TestChatService_CreateChat_SetsSubjectFromListing(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	viewerID := uuid.New()
	target := &entity.Profile{ID: uuid.New(), UserID: uuid.New()}
	listing := &entity.Listing{ID: uuid.New(), Title: "Vintage lamp", Status: entity.ListingStatusActive}
	chat := &entity.Chat{ID: uuid.New(), CreatorID: viewerID, InterlocutorID: target.UserID, ListingID: listing.ID}

	expectTx(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		listingRepo := mockRepo.NewMockListingRepository(t)
		chatRepo := mockRepo.NewMockChatRepository(t)
		messageRepo := mockRepo.NewMockMessageRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().ListingRepo().Return(listingRepo)
		factory.EXPECT().ChatRepo().Return(chatRepo)
		factory.EXPECT().MessageRepo().Return(messageRepo)

		profileRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
		chatRepo.EXPECT().FindOrCreate(ctx, viewerID, target.UserID, listing.ID).Return(chat, true, nil)
		chatRepo.EXPECT().Update(ctx, chat).Return(nil)
		messageRepo.EXPECT().FindLatestByChat(ctx, chat.ID).Return(nil, repository.ErrMessageNotFound)
	})

	output, err := fx.service.CreateChat(ctx, viewerID, &usecase.CreateChatInput{ToProfileID: target.ID, ListingID: listing.ID})

	require.NoError(t, err)
	assert.Equal(t, "Vintage lamp", output.Chat.Subject)
}

func TestChatService_CreateChat_MissingTargets(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()
	input := &usecase.CreateChatInput{ToProfileID: uuid.New(), ListingID: uuid.New()}

	t.Run("profile", func(t *testing.T) {
		fx := createTestChatService(t)
		expectTx(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			profileRepo := mockRepo.NewMockProfileRepository(t)
			factory.EXPECT().ProfileRepo().Return(profileRepo)
			profileRepo.EXPECT().FindByID(ctx, input.ToProfileID).Return(nil, repository.ErrProfileNotFound)
		})

		_, err := fx.service.CreateChat(ctx, viewerID, input)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("listing", func(t *testing.T) {
		fx := createTestChatService(t)
		expectTx(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			profileRepo := mockRepo.NewMockProfileRepository(t)
			listingRepo := mockRepo.NewMockListingRepository(t)
			factory.EXPECT().ProfileRepo().Return(profileRepo)
			factory.EXPECT().ListingRepo().Return(listingRepo)
			profileRepo.EXPECT().FindByID(ctx, input.ToProfileID).Return(&entity.Profile{ID: input.ToProfileID}, nil)
			listingRepo.EXPECT().FindByID(ctx, input.ListingID).Return(nil, repository.ErrListingNotFound)
		})

		_, err := fx.service.CreateChat(ctx, viewerID, input)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestChatService_GetChat(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()
	interlocutorID := uuid.New()
	chat := &entity.Chat{ID: uuid.New(), CreatorID: creatorID, InterlocutorID: interlocutorID}

	t.Run("participant sees latest message", func(t *testing.T) {
		fx := createTestChatService(t)
		latest := &entity.Message{ID: uuid.New(), ChatID: chat.ID, AuthorID: creatorID, Text: "hi", Timestamp: time.Now()}
		fx.chatRepo.EXPECT().FindByID(ctx, chat.ID).Return(chat, nil)
		fx.messageRepo.EXPECT().FindLatestByChat(ctx, chat.ID).Return(latest, nil)

		output, err := fx.service.GetChat(ctx, interlocutorID, chat.ID)

		require.NoError(t, err)
		assert.Same(t, chat, output.Chat)
		assert.Same(t, latest, output.LatestMessage)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		fx := createTestChatService(t)
		fx.chatRepo.EXPECT().FindByID(ctx, chat.ID).Return(chat, nil)

		_, err := fx.service.GetChat(ctx, uuid.New(), chat.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("unknown chat", func(t *testing.T) {
		fx := createTestChatService(t)
		missing := uuid.New()
		fx.chatRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrChatNotFound)

		_, err := fx.service.GetChat(ctx, creatorID, missing)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestChatService_ListChats(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	userID := uuid.New()
	empty := &entity.Chat{ID: uuid.New(), CreatorID: userID}
	busy := &entity.Chat{ID: uuid.New(), InterlocutorID: userID}
	latest := &entity.Message{ID: uuid.New(), ChatID: busy.ID}

	fx.chatRepo.EXPECT().FindByParticipant(ctx, userID).Return([]*entity.Chat{empty, busy}, nil)
	fx.messageRepo.EXPECT().FindLatestByChat(ctx, empty.ID).Return(nil, repository.ErrMessageNotFound)
	fx.messageRepo.EXPECT().FindLatestByChat(ctx, busy.ID).Return(latest, nil)

	outputs, err := fx.service.ListChats(ctx, userID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Nil(t, outputs[0].LatestMessage)
	assert.Same(t, latest, outputs[1].LatestMessage)
}
