package postgres

import (
	"context"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindOrCreateByCoordinates inserts the coordinate pair unless it is already stored and
// returns the row owning it. Concurrent callers converge on the same row through the
// unique (x, y) index.
func (repo *locationRepository) FindOrCreateByCoordinates(ctx context.Context, coordinates orb.Point) (*entity.Location, bool, error) {
	locationM := &model.LocationModel{
		X: coordinates.X(),
		Y: coordinates.Y(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "x"}, {Name: "y"}},
			DoNothing: true,
		}).
		Create(locationM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create location")
	}

	if result.RowsAffected > 0 {
		return toLocationDomain(locationM), true, nil
	}

	var existing model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("x = ? AND y = ?", coordinates.X(), coordinates.Y()).
		First(&existing).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to find location by coordinates")
	}

	return toLocationDomain(&existing), false, nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// Update persists the address of an existing location. Coordinates are the identity
// of a location and are never rewritten.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Update("address", location.Address)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Coordinates: orb.Point{data.X, data.Y},
		Address:     data.Address,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		X:         data.Coordinates.X(),
		Y:         data.Coordinates.Y(),
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
