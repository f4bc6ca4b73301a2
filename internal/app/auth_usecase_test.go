package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noteful/internal/app"
	"noteful/internal/domain/entities"
	"noteful/internal/errs"
)

var (
	ErrDatabaseConnection   = errors.New("database connection error")
	ErrHashingFailed        = errors.New("hashing failed")
	ErrPasswordVerification = errors.New("password verification error")
	ErrTokenGeneration      = errors.New("token generation failed")
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, userID, username string) (string, error) {
	args := m.Called(ctx, userID, username)
	return args.String(0), args.Error(1)
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	testUser := &entities.User{
		ID:           "user-123",
		Username:     "testuser",
		Fullname:     "Test User",
		PasswordHash: "hashed_password",
	}

	tests := []struct {
		name        string
		setupMocks  func(userRepo *mockUserRepository, passwordSvc *mockPasswordService)
		expectedRes *entities.User
		expectedErr error
		errKind     errs.Kind
	}{
		{
			name: "успешная регистрация",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				passwordSvc.On("Hash", mock.Anything, "password123").Return("hashed_password", nil).Once()
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Username == "testuser" && u.PasswordHash == "hashed_password" && u.Fullname == "Test User"
				})).Return(testUser, nil).Once()
			},
			expectedRes: testUser,
		},
		{
			name: "ошибка хэширования пароля",
			setupMocks: func(_ *mockUserRepository, passwordSvc *mockPasswordService) {
				passwordSvc.On("Hash", mock.Anything, "password123").Return("", ErrHashingFailed).Once()
			},
			expectedErr: ErrHashingFailed,
		},
		{
			name: "дублирующееся имя пользователя",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				passwordSvc.On("Hash", mock.Anything, "password123").Return("hashed_password", nil).Once()
				userRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, errs.New(errs.AlreadyExists, "Cannot create new user as `name` of testuser already exists")).Once()
			},
			errKind: errs.AlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)
			tt.setupMocks(userRepo, passwordSvc)

			useCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)
			user, err := useCase.Register(ctx, "testuser", "password123", "Test User")

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
			} else if tt.errKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errKind, errs.KindOf(err))
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRes, user)
			}

			userRepo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	testUser := &entities.User{
		ID:           "user-123",
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	tests := []struct {
		name       string
		setupMocks func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService)
		expectErr  bool
		errKind    errs.Kind
		wantToken  string
	}{
		{
			name: "успешный вход",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, "testuser").Return(testUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "password123", "hashed_password").Return(true, nil).Once()
				tokenSvc.On("GenerateAccessToken", mock.Anything, "user-123", "testuser").Return("access-token", nil).Once()
			},
			wantToken: "access-token",
		},
		{
			name: "несуществующий пользователь",
			setupMocks: func(userRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, "testuser").Return(nil, nil).Once()
			},
			expectErr: true,
			errKind:   errs.Unauthenticated,
		},
		{
			name: "неверный пароль",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, "testuser").Return(testUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "password123", "hashed_password").Return(false, nil).Once()
			},
			expectErr: true,
			errKind:   errs.Unauthenticated,
		},
		{
			name: "ошибка базы данных при поиске",
			setupMocks: func(userRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, "testuser").Return(nil, ErrDatabaseConnection).Once()
			},
			expectErr: true,
			errKind:   errs.Internal,
		},
		{
			name: "ошибка проверки пароля",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, "testuser").Return(testUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "password123", "hashed_password").Return(false, ErrPasswordVerification).Once()
			},
			expectErr: true,
			errKind:   errs.Internal,
		},
		{
			name: "ошибка выпуска токена",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, "testuser").Return(testUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "password123", "hashed_password").Return(true, nil).Once()
				tokenSvc.On("GenerateAccessToken", mock.Anything, "user-123", "testuser").Return("", ErrTokenGeneration).Once()
			},
			expectErr: true,
			errKind:   errs.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)
			tt.setupMocks(userRepo, passwordSvc, tokenSvc)

			useCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)
			result, err := useCase.Login(ctx, "testuser", "password123")

			if tt.expectErr {
				require.Error(t, err)
				assert.Equal(t, tt.errKind, errs.KindOf(err))
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, testUser, result.User)
				assert.Equal(t, tt.wantToken, result.AuthToken)
			}

			userRepo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}

func TestAuthUseCase_LoginIndistinguishableFailures(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepository)
	passwordSvc := new(mockPasswordService)
	tokenSvc := new(mockTokenService)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil).Once()
	userRepo.On("FindByUsername", mock.Anything, "testuser").
		Return(&entities.User{ID: "user-123", Username: "testuser", PasswordHash: "hashed_password"}, nil).Once()
	passwordSvc.On("Verify", mock.Anything, "wrongpassword", "hashed_password").Return(false, nil).Once()

	useCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

	_, errNoUser := useCase.Login(ctx, "ghost", "wrongpassword")
	_, errBadPassword := useCase.Login(ctx, "testuser", "wrongpassword")

	// Ответ не должен подсказывать, существует ли пользователь.
	require.Error(t, errNoUser)
	require.Error(t, errBadPassword)
	assert.Equal(t, errNoUser.Error(), errBadPassword.Error())
	assert.Equal(t, errs.KindOf(errNoUser), errs.KindOf(errBadPassword))

	userRepo.AssertExpectations(t)
	passwordSvc.AssertExpectations(t)
}
