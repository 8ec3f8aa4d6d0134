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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	locations   usecase.LocationManager
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Locations   usecase.LocationManager
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		locations:   params.Locations,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOwnProfile retrieves the profile of the given account.
func (srv *profileService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := findProfileByUser(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get own profile")
	}

	return profile, nil
}

// GetProfile retrieves a public profile by its ID.
func (srv *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies the present fields of the input to the account's profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := findProfileByUser(ctx, profileRepo, userID)
		if err != nil {
			return err
		}

		if !input.Location.IsEmpty() {
			location, err := srv.locations.Update(ctx, repoFactory.LocationRepo(), profile.Location, input.Location)
			if err != nil {
				return err
			}
			profile.Location = location
			profile.LocationID = &location.ID
		}

		if input.FullName != nil {
			profile.FullName = *input.FullName
		}
		if input.About != nil {
			profile.About = *input.About
		}
		if input.Avatar != nil {
			profile.Avatar = *input.Avatar
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

func findProfileByUser(ctx context.Context, repo repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
