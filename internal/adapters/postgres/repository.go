// Package postgres содержит реализации репозиториев поверх Postgres.
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"noteful/internal/errs"
)

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool.
// Выделено в интерфейс для подмены пула в тестах.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Close()
}

// validID сообщает, является ли идентификатор синтаксически корректным UUID.
// Некорректный идентификатор приравнивается к отсутствующей записи,
// ошибка приведения типа на уровне хранилища до запроса не доходит.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// translateConstraint отображает нарушения ограничений Postgres в доменные
// ошибки: нарушение уникальности имени - в AlreadyExists, нарушение внешнего
// ключа - в InvalidArgument. Для остальных ошибок возвращает nil.
func translateConstraint(err error, entity, name string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errs.Newf(errs.AlreadyExists,
			"Cannot create new %s as `name` of %s already exists", entity, name)
	case pgerrcode.ForeignKeyViolation:
		return errs.Newf(errs.InvalidArgument,
			"%s references an item that does not exist", entity)
	default:
		return nil
	}
}

// nullableText возвращает nil для пустой строки, чтобы записать NULL.
func nullableText(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
