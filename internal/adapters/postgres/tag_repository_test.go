package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/adapters/postgres"
	"noteful/internal/errs"
)

func TestTagRepository_Fetch(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное получение списка тегов", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, created_at, updated_at FROM tags .+").
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
					AddRow("tag-1", "urgent", now, now).
					AddRow("tag-2", "ideas", now.Add(-time.Hour), now.Add(-time.Hour)),
			)

		repo := postgres.NewTagRepository(mock)
		tags, err := repo.Fetch(ctx)

		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "urgent", tags[0].Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, created_at, updated_at FROM tags .+").
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewTagRepository(mock)
		tags, err := repo.Fetch(ctx)

		assert.Nil(t, tags)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch tags")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTagRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание тега", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO tags .+").
			WithArgs("urgent").
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
					AddRow("generated-id", "urgent", now, now),
			)

		repo := postgres.NewTagRepository(mock)
		tag, err := repo.Create(ctx, "urgent")

		require.NoError(t, err)
		require.NotNil(t, tag)
		assert.Equal(t, "generated-id", tag.ID)
		assert.Equal(t, "urgent", tag.Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Дублирующееся имя тега", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO tags .+").
			WithArgs("urgent").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		repo := postgres.NewTagRepository(mock)
		tag, err := repo.Create(ctx, "urgent")

		assert.Nil(t, tag)
		require.Error(t, err)
		assert.Equal(t, errs.AlreadyExists, errs.KindOf(err))
		assert.Equal(t, "Cannot create new tag as `name` of urgent already exists", errs.MessageOf(err))

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTagRepository_Update(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)
	tagID := "7f9d2c4e-5a1b-4f3c-8d6e-0a1b2c3d4e5f"

	t.Run("Успешное переименование тега", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE tags SET name = .+").
			WithArgs(tagID, "renamed").
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
					AddRow(tagID, "renamed", now.Add(-time.Hour), now),
			)

		repo := postgres.NewTagRepository(mock)
		tag, err := repo.Update(ctx, tagID, "renamed")

		require.NoError(t, err)
		require.NotNil(t, tag)
		assert.Equal(t, "renamed", tag.Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Тег не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE tags SET name = .+").
			WithArgs(tagID, "renamed").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

		repo := postgres.NewTagRepository(mock)
		tag, err := repo.Update(ctx, tagID, "renamed")

		require.NoError(t, err)
		assert.Nil(t, tag)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Некорректный идентификатор не доходит до запроса", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := postgres.NewTagRepository(mock)
		tag, err := repo.Update(ctx, "not-a-uuid", "renamed")

		require.NoError(t, err)
		assert.Nil(t, tag)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTagRepository_Delete(t *testing.T) {
	ctx := testContext(t)
	tagID := "7f9d2c4e-5a1b-4f3c-8d6e-0a1b2c3d4e5f"

	t.Run("Удаление убирает тег из заметок перед удалением", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM note_tags WHERE tag_id = .+").
			WithArgs(tagID).
			WillReturnResult(pgxmock.NewResult("DELETE", 5))
		mock.ExpectExec("DELETE FROM tags WHERE id = .+").
			WithArgs(tagID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewTagRepository(mock)
		require.NoError(t, repo.Delete(ctx, tagID))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Удаление несуществующего тега идемпотентно", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM note_tags WHERE tag_id = .+").
			WithArgs(tagID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("DELETE FROM tags WHERE id = .+").
			WithArgs(tagID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewTagRepository(mock)
		require.NoError(t, repo.Delete(ctx, tagID))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Некорректный идентификатор не доходит до запроса", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := postgres.NewTagRepository(mock)
		require.NoError(t, repo.Delete(ctx, "not-a-uuid"))

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
