// Package app содержит сценарии использования приложения.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"noteful/internal/domain/entities"
	"noteful/internal/errs"
	"noteful/internal/ports/repositories"
	svc "noteful/internal/ports/services"
	"noteful/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration   = "starting user registration"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent username"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by username"
	msgErrVerifyingPassword = "error verifying password"
	msgErrGenerateToken     = "failed to generate access token"

	errCtxHashingPassword   = "hashing password"
	errCtxCreatingUser      = "creating user"
	errCtxFindingUser       = "finding user"
	errCtxVerifyingPassword = "verifying password"
	errCtxGeneratingToken   = "generating token"
)

// Сообщение не раскрывает, какое именно из полей оказалось неверным.
const msgIncorrectCredentials = "Incorrect username or password"

// LoginResult - результат успешного входа: пользователь и токен доступа.
type LoginResult struct {
	User      *entities.User
	AuthToken string
}

// AuthUseCase определяет сценарии регистрации и входа.
type AuthUseCase interface {
	Register(ctx context.Context, username, password, fullname string) (*entities.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сценария аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
// Пароль сохраняется только в виде bcrypt-хэша.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, password, fullname string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	hash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		PasswordHash: hash,
		Fullname:     fullname,
	})
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", user.ID))
	return user, nil
}

// Login проверяет учетные данные и возвращает пользователя с токеном доступа.
// Отсутствие пользователя и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user == nil {
		log.Debug(ctx, msgLoginNonExistent)
		return nil, errs.New(errs.Unauthenticated, msgIncorrectCredentials)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, errs.New(errs.Unauthenticated, msgIncorrectCredentials)
	}

	token, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return &LoginResult{User: user, AuthToken: token}, nil
}
