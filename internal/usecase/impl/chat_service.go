package impl

import (
	"context"
	"log/slog"

	deliverycontext "quicksell/internal/delivery/context"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	txManager   repository.TransactionManager
	chatRepo    repository.ChatRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ChatRepo    repository.ChatRepository
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		txManager:   params.TxManager,
		chatRepo:    params.ChatRepo,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateChat opens the conversation of the (viewer, target user, listing) triple. The
// subject is set from the listing title only when the chat is first created.
func (srv *chatService) CreateChat(ctx context.Context, userID uuid.UUID, input *usecase.CreateChatInput) (*usecase.ChatOutput, error) {
	var output *usecase.ChatOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		target, err := repoFactory.ProfileRepo().FindByID(ctx, input.ToProfileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		listing, err := findListing(ctx, repoFactory.ListingRepo(), input.ListingID)
		if err != nil {
			return err
		}

		chatRepo := repoFactory.ChatRepo()
		chat, created, err := chatRepo.FindOrCreate(ctx, userID, target.UserID, listing.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find or create chat")
		}

		if created {
			chat.Subject = listing.Title
			if err := chatRepo.Update(ctx, chat); err != nil {
				return errors.Wrap(err, "failed to set chat subject")
			}
			srv.log(ctx).Info("Chat created", slog.Any("chatID", chat.ID), slog.Any("listingID", listing.ID))
		}

		latest, err := latestMessage(ctx, repoFactory.MessageRepo(), chat.ID)
		if err != nil {
			return err
		}
		output = &usecase.ChatOutput{Chat: chat, LatestMessage: latest}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chat")
	}

	return output, nil
}

// GetChat returns a chat the viewer takes part in.
func (srv *chatService) GetChat(ctx context.Context, userID, chatID uuid.UUID) (*usecase.ChatOutput, error) {
	chat, err := findParticipantChat(ctx, srv.chatRepo, userID, chatID)
	if err != nil {
		return nil, err
	}

	latest, err := latestMessage(ctx, srv.messageRepo, chat.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.ChatOutput{Chat: chat, LatestMessage: latest}, nil
}

// ListChats returns every chat the viewer takes part in.
func (srv *chatService) ListChats(ctx context.Context, userID uuid.UUID) ([]*usecase.ChatOutput, error) {
	chats, err := srv.chatRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}

	outputs := make([]*usecase.ChatOutput, 0, len(chats))
	for _, chat := range chats {
		latest, err := latestMessage(ctx, srv.messageRepo, chat.ID)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, &usecase.ChatOutput{Chat: chat, LatestMessage: latest})
	}

	return outputs, nil
}

// findParticipantChat loads a chat and rejects viewers outside the conversation.
func findParticipantChat(ctx context.Context, repo repository.ChatRepository, userID, chatID uuid.UUID) (*entity.Chat, error) {
	chat, err := repo.FindByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("chat not found")
		}

		return nil, errors.Wrap(err, "failed to find chat")
	}

	if !chat.HasParticipant(userID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a participant of the chat")
	}

	return chat, nil
}

// latestMessage returns nil for an empty chat.
func latestMessage(ctx context.Context, repo repository.MessageRepository, chatID uuid.UUID) (*entity.Message, error) {
	message, err := repo.FindLatestByChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest message")
	}

	return message, nil
}
