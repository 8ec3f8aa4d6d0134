package impl

import (
	"context"
	"testing"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	mockRepo "quicksell/internal/mocks/repository"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func requireValidationError(t *testing.T, err error, field, message string) {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)
	assert.Equal(t, field, validationErr.Field())
	assert.Equal(t, message, validationErr.Message())
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationManager_Create_RequiresCoordinates(t *testing.T) {
	manager := NewLocationManager(newDiscardLogger())
	repo := mockRepo.NewMockLocationRepository(t)

	_, err := manager.Create(context.Background(), repo, &usecase.LocationInput{Address: ptr("Main st.")})

	requireValidationError(t, err, "coordinates", "This field is required.")
}

func TestLocationManager_Create_AppliesAddress(t *testing.T) {
	manager := NewLocationManager(newDiscardLogger())
	repo := mockRepo.NewMockLocationRepository(t)
	ctx := context.Background()
	point := orb.Point{50.45, 30.52}
	stored := &entity.Location{ID: uuid.New(), Coordinates: point}

	repo.EXPECT().FindOrCreateByCoordinates(ctx, point).Return(stored, true, nil)
	repo.EXPECT().Update(ctx, stored).Return(nil)

	location, err := manager.Create(ctx, repo, &usecase.LocationInput{Coordinates: &point, Address: ptr("Khreshchatyk 1")})

	require.NoError(t, err)
	assert.Same(t, stored, location)
	assert.Equal(t, "Khreshchatyk 1", location.Address)
}

func TestLocationManager_Create_SameCoordinatesShareLocation(t *testing.T) {
	manager := NewLocationManager(newDiscardLogger())
	repo := mockRepo.NewMockLocationRepository(t)
	ctx := context.Background()
	point := orb.Point{1.5, 2.5}
	stored := &entity.Location{ID: uuid.New(), Coordinates: point}

	repo.EXPECT().FindOrCreateByCoordinates(ctx, point).Return(stored, true, nil).Once()
	repo.EXPECT().FindOrCreateByCoordinates(ctx, point).Return(stored, false, nil).Once()

	first, err := manager.Create(ctx, repo, &usecase.LocationInput{Coordinates: &point})
	require.NoError(t, err)
	second, err := manager.Create(ctx, repo, &usecase.LocationInput{Coordinates: &point})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestLocationManager_Create_RepositoryError(t *testing.T) {
	manager := NewLocationManager(newDiscardLogger())
	repo := mockRepo.NewMockLocationRepository(t)
	ctx := context.Background()
	point := orb.Point{1, 2}

	repo.EXPECT().FindOrCreateByCoordinates(ctx, point).Return(nil, false, errors.New("db error"))

	_, err := manager.Create(ctx, repo, &usecase.LocationInput{Coordinates: &point})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find or create location")
}

func TestLocationManager_Update(t *testing.T) {
	ctx := context.Background()
	oldPoint := orb.Point{10, 20}
	newPoint := orb.Point{11, 21}

	t.Run("nil input keeps current", func(t *testing.T) {
		manager := NewLocationManager(newDiscardLogger())
		repo := mockRepo.NewMockLocationRepository(t)
		current := &entity.Location{ID: uuid.New(), Coordinates: oldPoint}

		location, err := manager.Update(ctx, repo, current, nil)

		require.NoError(t, err)
		assert.Same(t, current, location)
	})

	t.Run("empty input keeps missing location", func(t *testing.T) {
		manager := NewLocationManager(newDiscardLogger())
		repo := mockRepo.NewMockLocationRepository(t)

		location, err := manager.Update(ctx, repo, nil, &usecase.LocationInput{})

		require.NoError(t, err)
		assert.Nil(t, location)
	})

	t.Run("same coordinates mutate in place", func(t *testing.T) {
		manager := NewLocationManager(newDiscardLogger())
		repo := mockRepo.NewMockLocationRepository(t)
		current := &entity.Location{ID: uuid.New(), Coordinates: oldPoint, Address: "old"}
		repo.EXPECT().Update(ctx, current).Return(nil)

		location, err := manager.Update(ctx, repo, current, &usecase.LocationInput{Coordinates: &oldPoint, Address: ptr("new")})

		require.NoError(t, err)
		assert.Same(t, current, location)
		assert.Equal(t, "new", current.Address)
	})

	t.Run("address only mutates in place", func(t *testing.T) {
		manager := NewLocationManager(newDiscardLogger())
		repo := mockRepo.NewMockLocationRepository(t)
		current := &entity.Location{ID: uuid.New(), Coordinates: oldPoint}
		repo.EXPECT().Update(ctx, current).Return(nil)

		location, err := manager.Update(ctx, repo, current, &usecase.LocationInput{Address: ptr("renamed")})

		require.NoError(t, err)
		assert.Equal(t, current.ID, location.ID)
	})

	t.Run("new coordinates switch location", func(t *testing.T) {
		manager := NewLocationManager(newDiscardLogger())
		repo := mockRepo.NewMockLocationRepository(t)
		current := &entity.Location{ID: uuid.New(), Coordinates: oldPoint, Address: "old"}
		moved := &entity.Location{ID: uuid.New(), Coordinates: newPoint}
		repo.EXPECT().FindOrCreateByCoordinates(ctx, newPoint).Return(moved, true, nil)

		location, err := manager.Update(ctx, repo, current, &usecase.LocationInput{Coordinates: &newPoint})

		require.NoError(t, err)
		assert.Equal(t, moved.ID, location.ID)
		assert.NotEqual(t, current.ID, location.ID)
		assert.Equal(t, "old", current.Address)
	})

	t.Run("no current location needs coordinates", func(t *testing.T) {
		manager := NewLocationManager(newDiscardLogger())
		repo := mockRepo.NewMockLocationRepository(t)

		_, err := manager.Update(ctx, repo, nil, &usecase.LocationInput{Address: ptr("somewhere")})

		requireValidationError(t, err, "coordinates", "This field is required.")
	})

	t.Run("no current location with coordinates creates one", func(t *testing.T) {
		manager := NewLocationManager(newDiscardLogger())
		repo := mockRepo.NewMockLocationRepository(t)
		created := &entity.Location{ID: uuid.New(), Coordinates: newPoint}
		repo.EXPECT().FindOrCreateByCoordinates(ctx, newPoint).Return(created, true, nil)

		location, err := manager.Update(ctx, repo, nil, &usecase.LocationInput{Coordinates: &newPoint})

		require.NoError(t, err)
		assert.Same(t, created, location)
	})
}
