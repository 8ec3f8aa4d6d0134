// Package impl contains the application-specific business rules implementations.
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
)

// locationService implements the LocationManager interface.
type locationService struct {
	logger *slog.Logger
}

// NewLocationManager is the constructor for locationService.
func NewLocationManager(logger *slog.Logger) usecase.LocationManager {
	return &locationService{
		logger: logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create resolves the shared location for the coordinates and applies the address to it.
func (srv *locationService) Create(ctx context.Context, repo repository.LocationRepository, input *usecase.LocationInput) (*entity.Location, error) {
	if input == nil || input.Coordinates == nil {
		return nil, errCoordinatesRequired()
	}

	location, created, err := repo.FindOrCreateByCoordinates(ctx, *input.Coordinates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create location")
	}
	srv.log(ctx).Debug("Resolved location", slog.Any("locationID", location.ID), slog.Bool("created", created))

	if err := srv.applyFields(ctx, repo, location, input); err != nil {
		return nil, err
	}

	return location, nil
}

// Update switches to the location at the new coordinates when they differ from current.
// The address is then written onto whichever location ends up referenced, which may be
// shared with other profiles and listings.
func (srv *locationService) Update(
	ctx context.Context,
	repo repository.LocationRepository,
	current *entity.Location,
	input *usecase.LocationInput,
) (*entity.Location, error) {
	if input.IsEmpty() {
		return current, nil
	}

	target := current
	if input.Coordinates != nil && !current.SameCoordinates(*input.Coordinates) {
		location, created, err := repo.FindOrCreateByCoordinates(ctx, *input.Coordinates)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find or create location")
		}
		srv.log(ctx).Debug("Location moved", slog.Any("locationID", location.ID), slog.Bool("created", created))
		target = location
	}

	if target == nil {
		return nil, errCoordinatesRequired()
	}

	if err := srv.applyFields(ctx, repo, target, input); err != nil {
		return nil, err
	}

	return target, nil
}

func (srv *locationService) applyFields(ctx context.Context, repo repository.LocationRepository, location *entity.Location, input *usecase.LocationInput) error {
	if input.Address == nil {
		return nil
	}

	location.Address = *input.Address
	if err := repo.Update(ctx, location); err != nil {
		return errors.Wrap(err, "failed to update location")
	}

	return nil
}

func errCoordinatesRequired() error {
	return domainerrors.NewValidationError("coordinates", "This field is required.")
}
