package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"noteful/internal/adapters/services"
)

func TestServiceBcrypt_Hash(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBcrypt(bcrypt.MinCost)

	t.Run("Успешное хэширование пароля", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "password123", hash)
	})

	t.Run("Разные вызовы дают разные хэши", func(t *testing.T) {
		first, err := svc.Hash(ctx, "password123")
		require.NoError(t, err)
		second, err := svc.Hash(ctx, "password123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Пустой пароль отклоняется", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "")

		assert.Empty(t, hash)
		assert.ErrorIs(t, err, services.ErrEmptyPassword)
	})
}

func TestServiceBcrypt_Verify(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)

	t.Run("Верный пароль проходит проверку", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "password123", hash)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Неверный пароль не проходит проверку без ошибки", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "wrongpassword", hash)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Пустой пароль отклоняется", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "", hash)

		assert.False(t, ok)
		assert.ErrorIs(t, err, services.ErrEmptyPassword)
	})

	t.Run("Некорректный хэш возвращает ошибку", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "password123", "not-a-bcrypt-hash")

		assert.False(t, ok)
		assert.Error(t, err)
	})
}
