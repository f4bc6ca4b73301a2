package services

import "context"

// TokenService определяет операции выпуска токенов доступа.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID, username string) (string, error)
}
