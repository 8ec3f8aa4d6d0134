package impl

import (
	"context"
	"testing"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/domain/service"
	mockRepo "quicksell/internal/mocks/repository"
	mockSvc "quicksell/internal/mocks/service"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	policy       *mockSvc.MockPasswordPolicy
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		policy:       mockSvc.NewMockPasswordPolicy(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewAccountService(AccountServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		Policy:       fx.policy,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func newRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "Str0ng!Passw0rd",
		FCMID:    "fcm-token",
	}
}

func TestAccountService_ValidatePassword(t *testing.T) {
	fx := createTestAccountService(t)
	fx.policy.EXPECT().Validate("short").Return(errors.New("This password is too short. It must contain at least 8 characters."))
	fx.policy.EXPECT().Validate("Str0ng!Passw0rd").Return(nil)

	err := fx.service.ValidatePassword("short")
	requireValidationError(t, err, "password", "This password is too short. It must contain at least 8 characters.")

	assert.NoError(t, fx.service.ValidatePassword("Str0ng!Passw0rd"))
}

func TestAccountService_Register_NewDevice(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := newRegisterInput()
	device := &entity.Device{ID: uuid.New(), FCMID: input.FCMID, IsActive: true}
	userID := uuid.New()

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	expectTx(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().DeviceRepo().Return(deviceRepo)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)

		deviceRepo.EXPECT().FindOrCreateByFCMID(ctx, input.FCMID).Return(device, true, nil)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				user.ID = userID
				user.Profile = &entity.Profile{ID: uuid.New(), UserID: userID}

				return nil
			})
		deviceRepo.EXPECT().Update(ctx, device).Return(nil)
		profileRepo.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.FullName == input.FullName
		})).Return(nil)
	})

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, input.FullName, user.Profile.FullName)
	require.NotNil(t, device.OwnerID)
	assert.Equal(t, userID, *device.OwnerID)
}

func TestAccountService_Register_BoundDeviceReturnsOwner(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := newRegisterInput()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), FCMID: input.FCMID, OwnerID: &ownerID, IsActive: false, FailsCount: 4}
	owner := &entity.User{ID: ownerID, Email: "owner@example.com", Profile: &entity.Profile{FullName: "Owner"}}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)

	expectTx(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().DeviceRepo().Return(deviceRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		deviceRepo.EXPECT().FindOrCreateByFCMID(ctx, input.FCMID).Return(device, false, nil)
		deviceRepo.EXPECT().Update(ctx, device).Return(nil)
		userRepo.EXPECT().FindByID(ctx, ownerID).Return(owner, nil)
	})

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Same(t, owner, user)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Owner", user.Profile.FullName)
	assert.True(t, device.IsActive)
	assert.Zero(t, device.FailsCount)
}

func TestAccountService_Register_OwnerlessDeviceCreatesAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := newRegisterInput()
	device := &entity.Device{ID: uuid.New(), FCMID: input.FCMID, IsActive: false, FailsCount: 2}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	expectTx(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().DeviceRepo().Return(deviceRepo)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)

		deviceRepo.EXPECT().FindOrCreateByFCMID(ctx, input.FCMID).Return(device, false, nil)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				user.ID = uuid.New()
				user.Profile = &entity.Profile{ID: uuid.New(), UserID: user.ID}

				return nil
			})
		deviceRepo.EXPECT().Update(ctx, device).Return(nil)
		profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.True(t, device.IsActive)
	assert.Zero(t, device.FailsCount)
	assert.Equal(t, user.ID, *device.OwnerID)
}

func TestAccountService_Register_InvalidPasswordWritesNothing(t *testing.T) {
	fx := createTestAccountService(t)
	input := newRegisterInput()
	input.Password = "12345678"

	fx.policy.EXPECT().Validate(input.Password).Return(errors.New("This password is entirely numeric."))

	_, err := fx.service.Register(context.Background(), input)

	requireValidationError(t, err, "password", "This password is entirely numeric.")
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := newRegisterInput()
	device := &entity.Device{ID: uuid.New(), FCMID: input.FCMID}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	expectTx(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().DeviceRepo().Return(deviceRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		deviceRepo.EXPECT().FindOrCreateByFCMID(ctx, input.FCMID).Return(device, true, nil)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))
	})

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.tokenService.EXPECT().IssueTokens(user.ID).Return(&service.TokenPair{Access: "access", Refresh: "refresh"}, nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
		assert.Same(t, user, output.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetAccount(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
