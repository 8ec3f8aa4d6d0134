package postgres

import (
	"context"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message. The timestamp defaults to the insertion time.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrNotFound, "chat does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.Timestamp = messageM.Timestamp

	return nil
}

// FindLatestByChat retrieves the most recent message of a chat.
func (repo *messageRepository) FindLatestByChat(ctx context.Context, chatID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("timestamp DESC").
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest message")
	}

	return toMessageDomain(&messageM), nil
}

// FindByChat retrieves a page of messages, newest first.
func (repo *messageRepository) FindByChat(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	query := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var messageModels []*model.MessageModel
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by chat")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkRead flags the unread messages of the other party as read.
func (repo *messageRepository) MarkRead(ctx context.Context, chatID, readerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("chat_id = ? AND author_id <> ? AND read = ?", chatID, readerID, false).
		Update("read", true)

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark messages read")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:        data.ID,
		ChatID:    data.ChatID,
		AuthorID:  data.AuthorID,
		Text:      data.Text,
		Timestamp: data.Timestamp,
		Read:      data.Read,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:        data.ID,
		ChatID:    data.ChatID,
		AuthorID:  data.AuthorID,
		Text:      data.Text,
		Timestamp: data.Timestamp,
		Read:      data.Read,
	}
}
