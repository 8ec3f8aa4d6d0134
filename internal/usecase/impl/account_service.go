package impl

import (
	"context"
	"log/slog"

	deliverycontext "quicksell/internal/delivery/context"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/domain/service"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	policy       service.PasswordPolicy
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		policy:       params.Policy,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ValidatePassword runs the password policy and scopes its failure to the password field.
func (srv *accountService) ValidatePassword(password string) error {
	if err := srv.policy.Validate(password); err != nil {
		return domainerrors.NewValidationError("password", err.Error())
	}

	return nil
}

// Register binds the account to the device identified by its FCM token. A device that is
// already bound is reactivated and its owner returned; the submitted data is discarded.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		device, created, err := deviceRepo.FindOrCreateByFCMID(ctx, input.FCMID)
		if err != nil {
			return errors.Wrap(err, "failed to find or create device")
		}

		if !created && device.OwnerID != nil {
			user, err := srv.reactivateDevice(ctx, repoFactory, device)
			if err != nil {
				return err
			}
			registered = user

			return nil
		}

		user, err := srv.createAccount(ctx, repoFactory, device, input)
		if err != nil {
			return err
		}
		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return registered, nil
}

func (srv *accountService) reactivateDevice(ctx context.Context, repoFactory repository.RepositoryFactory, device *entity.Device) (*entity.User, error) {
	device.Reactivate()
	if err := repoFactory.DeviceRepo().Update(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to reactivate device")
	}

	owner, err := repoFactory.UserRepo().FindByID(ctx, *device.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load device owner")
	}
	srv.log(ctx).Info("Device already registered, returning its owner", slog.Any("userID", owner.ID))

	return owner, nil
}

func (srv *accountService) createAccount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	device *entity.Device,
	input *usecase.RegisterInput,
) (*entity.User, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	device.OwnerID = &user.ID
	device.Reactivate()
	if err := repoFactory.DeviceRepo().Update(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to bind device")
	}

	if user.Profile == nil {
		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("profile was not created with the account")
	}
	user.Profile.FullName = input.FullName
	if err := repoFactory.ProfileRepo().Update(ctx, user.Profile); err != nil {
		return nil, errors.Wrap(err, "failed to set profile name")
	}

	return user, nil
}

// Login verifies the credentials and issues a token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	tokens, err := srv.tokenService.IssueTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		User:         user,
	}, nil
}

// GetAccount retrieves the account with its profile.
func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
