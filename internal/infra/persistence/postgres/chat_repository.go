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
	"gorm.io/gorm/clause"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// withRelations preloads both participants and the listing of a chat.
func (repo *chatRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("CreatorProfile.Location").
		Preload("InterlocutorProfile.Location").
		Preload("Listing.Category").
		Preload("Listing.Location").
		Preload("Listing.Seller.Location")
}

// FindOrCreate inserts the chat for the triple unless it exists, then loads it with relations.
func (repo *chatRepository) FindOrCreate(ctx context.Context, creatorID, interlocutorID, listingID uuid.UUID) (*entity.Chat, bool, error) {
	chatM := &model.ChatModel{
		CreatorID:      creatorID,
		InterlocutorID: interlocutorID,
		ListingID:      listingID,
	}

	result := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "creator_id"},
				{Name: "interlocutor_id"},
				{Name: "listing_id"},
			},
			DoNothing: true,
		}).
		Create(chatM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, false, errors.Wrap(domainerrors.ErrNotFound, "chat participant or listing does not exist")
		}

		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create chat")
	}

	var stored model.ChatModel
	if err := repo.withRelations(ctx).
		Where("creator_id = ? AND interlocutor_id = ? AND listing_id = ?", creatorID, interlocutorID, listingID).
		First(&stored).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to find chat by participants")
	}

	return toChatDomain(&stored), result.RowsAffected > 0, nil
}

// FindByID retrieves a chat by its public ID.
func (repo *chatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chat, error) {
	var chatM model.ChatModel

	if err := repo.withRelations(ctx).
		Where("chats.id = ?", id).
		First(&chatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat by ID")
	}

	return toChatDomain(&chatM), nil
}

// FindByParticipant retrieves all chats the account takes part in, newest first.
func (repo *chatRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Chat, error) {
	var chatModels []*model.ChatModel

	if err := repo.withRelations(ctx).
		Where("creator_id = ? OR interlocutor_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&chatModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chats by participant")
	}

	chats := make([]*entity.Chat, 0, len(chatModels))
	for _, chatM := range chatModels {
		chats = append(chats, toChatDomain(chatM))
	}

	return chats, nil
}

// Update persists the subject of a chat.
func (repo *chatRepository) Update(ctx context.Context, chat *entity.Chat) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatModel{}).
		Where("id = ?", chat.ID).
		Update("subject", chat.Subject)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update chat")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChatNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toChatDomain converts a GORM ChatModel to a domain Chat entity.
func toChatDomain(data *model.ChatModel) *entity.Chat {
	if data == nil {
		return nil
	}

	return &entity.Chat{
		ID:                  data.ID,
		CreatorID:           data.CreatorID,
		InterlocutorID:      data.InterlocutorID,
		ListingID:           data.ListingID,
		Subject:             data.Subject,
		CreatorProfile:      toProfileDomain(data.CreatorProfile),
		InterlocutorProfile: toProfileDomain(data.InterlocutorProfile),
		Listing:             toListingDomain(data.Listing),
		DateCreated:         data.CreatedAt,
	}
}
