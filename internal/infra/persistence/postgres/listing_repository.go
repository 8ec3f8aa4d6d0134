package postgres

import (
	"context"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// withRelations preloads everything a rendered listing needs.
func (repo *listingRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Location").
		Preload("Seller.Location")
}

// Create persists a new listing. Referenced rows must already exist.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid listing reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("price", "Ensure this value is greater than or equal to 0.")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.DateCreated = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing by its public ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.withRelations(ctx).
		Where("listings.id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// Find retrieves listings matching the filter, newest first.
func (repo *listingRepository) Find(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	query := repo.withRelations(ctx)

	if filter.Status != nil {
		query = query.Where("listings.status = ?", int(*filter.Status))
	}
	if filter.CategoryID != nil {
		query = query.Where("listings.category_id = ?", *filter.CategoryID)
	}
	if filter.SellerID != nil {
		query = query.Where("listings.seller_id = ?", *filter.SellerID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var listingModels []*model.ListingModel
	if err := query.
		Order("listings.created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// Update persists the writable fields of a listing. Sold, views, expiry, seller and
// photos are owned by the system.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"title":         listing.Title,
			"description":   listing.Description,
			"price":         listing.Price,
			"category_id":   listing.CategoryID,
			"status":        int(listing.Status),
			"quantity":      listing.Quantity,
			"location_id":   listing.LocationID,
			"condition_new": listing.ConditionNew,
			"properties":    datatypes.JSONMap(listing.Properties),
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid listing reference")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewValidationError("price", "Ensure this value is greater than or equal to 0.")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// IncrementViews adds one to the view counter without touching updated_at.
func (repo *listingRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment listing views")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	properties := map[string]any(data.Properties)
	if properties == nil {
		properties = map[string]any{}
	}

	photos := []string(data.Photos)
	if photos == nil {
		photos = []string{}
	}

	return &entity.Listing{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Price:        data.Price,
		CategoryID:   data.CategoryID,
		Category:     toCategoryDomain(data.Category),
		Status:       entity.ListingStatus(data.Status),
		Quantity:     data.Quantity,
		Sold:         data.Sold,
		Views:        data.Views,
		DateCreated:  data.CreatedAt,
		DateExpires:  data.DateExpires,
		LocationID:   data.LocationID,
		Location:     toLocationDomain(data.Location),
		ConditionNew: data.ConditionNew,
		Properties:   properties,
		SellerID:     data.SellerID,
		Seller:       toProfileDomain(data.Seller),
		Photos:       photos,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
// Loaded relations are not carried over; only their IDs are persisted.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	properties := datatypes.JSONMap(data.Properties)
	if properties == nil {
		properties = datatypes.JSONMap{}
	}

	photos := datatypes.JSONSlice[string](data.Photos)
	if photos == nil {
		photos = datatypes.JSONSlice[string]{}
	}

	return &model.ListingModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Price:        data.Price,
		CategoryID:   data.CategoryID,
		Status:       int(data.Status),
		Quantity:     data.Quantity,
		Sold:         data.Sold,
		Views:        data.Views,
		DateExpires:  data.DateExpires,
		LocationID:   data.LocationID,
		ConditionNew: data.ConditionNew,
		Properties:   properties,
		SellerID:     data.SellerID,
		Photos:       photos,
		CreatedAt:    data.DateCreated,
		UpdatedAt:    data.UpdatedAt,
	}
}
