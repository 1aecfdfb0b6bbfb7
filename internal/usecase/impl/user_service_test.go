package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func activeTestUser() *entity.User {
	now := time.Now().UTC()

	return &entity.User{
		ID:             uuid.New(),
		Username:       "user1",
		Email:          "user1@email.com",
		HashedPassword: "$2a$10$fakehashfakehashfakehash",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "user2",
		Email:    "user2@email.com",
		FullName: "User Two",
		Password: "test_password",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
			user.CreatedAt = time.Now().UTC()
			user.UpdatedAt = user.CreatedAt
		}).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, input.Username, user.Username)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, input.FullName, user.FullName)
	assert.Equal(t, "hashed_password", user.HashedPassword)
	assert.True(t, user.IsActive)
}

func TestUserService_RegisterUser_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "user1",
		Email:    "fresh@email.com",
		Password: "test_password",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(activeTestUser(), nil)

	user, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameAlreadyExists))
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "fresh_username",
		Email:    "user1@email.com",
		Password: "test_password",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(activeTestUser(), nil)

	user, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

// A concurrent registration can slip between the pre-checks and the insert;
// the constraint error from the repository must keep its conflict identity.
func TestUserService_RegisterUser_ConstraintRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "user2",
		Email:    "user2@email.com",
		Password: "test_password",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrUsernameAlreadyExists, "failed to create user"))

	user, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameAlreadyExists))
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "user2",
		Email:    "user2@email.com",
		Password: "test_password",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt exploded"))

	user, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := activeTestUser()
	input := &usecase.LoginInput{
		Username: storedUser.Username,
		Password: "user1_password",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.HashedPassword).Return(true)
	fx.tokenService.EXPECT().CreateToken(storedUser.Username).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ghost", Password: "user1_password"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := activeTestUser()
	input := &usecase.LoginInput{Username: storedUser.Username, Password: "wrong_password"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.HashedPassword).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Disabled accounts must fail with the same error as bad credentials.
func TestUserService_Login_InactiveUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := activeTestUser()
	storedUser.IsActive = false
	input := &usecase.LoginInput{Username: storedUser.Username, Password: "user1_password"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.HashedPassword).Return(true)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_EmptyPassword(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "user1"})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_TokenSignFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := activeTestUser()
	input := &usecase.LoginInput{Username: storedUser.Username, Password: "user1_password"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.HashedPassword).Return(true)
	fx.tokenService.EXPECT().CreateToken(storedUser.Username).Return("", errors.New("signing broke"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignFailed))
}

func TestUserService_CurrentUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := activeTestUser()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, storedUser.Username).
		Return(storedUser, nil)

	user, err := fx.service.CurrentUser(ctx, storedUser.Username)

	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

// A token whose subject no longer matches an account reads as an invalid
// token, not as a user-not-found leak.
func TestUserService_CurrentUser_UnknownSubject(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "deleted_user").
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx, "deleted_user")

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestUserService_CurrentUser_Inactive(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := activeTestUser()
	storedUser.IsActive = false

	fx.userRepo.EXPECT().
		FindByUsername(ctx, storedUser.Username).
		Return(storedUser, nil)

	user, err := fx.service.CurrentUser(ctx, storedUser.Username)

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInactiveUser))
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := []*entity.User{activeTestUser(), activeTestUser(), activeTestUser()}

	fx.userRepo.EXPECT().List(ctx).Return(stored, nil)

	users, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, stored, users)
}

func TestUserService_ListUsers_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx).Return(nil, errors.New("connection reset"))

	users, err := fx.service.ListUsers(ctx)

	assert.Nil(t, users)
	require.Error(t, err)
}
