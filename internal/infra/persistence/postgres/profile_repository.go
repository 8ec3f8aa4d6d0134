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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by its public ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUserID retrieves the profile owned by the given account.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Location").
		Where(query, arg).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Update persists the writable fields of a profile. Online and rating are owned by the system.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"full_name":   profile.FullName,
			"about":       profile.About,
			"avatar":      profile.Avatar,
			"location_id": profile.LocationID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid location reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		UserID:      data.UserID,
		FullName:    data.FullName,
		About:       data.About,
		Online:      data.Online,
		Rating:      data.Rating,
		Avatar:      data.Avatar,
		LocationID:  data.LocationID,
		Location:    toLocationDomain(data.Location),
		DateCreated: data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
// The referenced location is not carried over; only its ID is persisted.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:         data.ID,
		UserID:     data.UserID,
		FullName:   data.FullName,
		About:      data.About,
		Online:     data.Online,
		Rating:     data.Rating,
		Avatar:     data.Avatar,
		LocationID: data.LocationID,
		CreatedAt:  data.DateCreated,
		UpdatedAt:  data.UpdatedAt,
	}
}
