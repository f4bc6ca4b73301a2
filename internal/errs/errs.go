// Package errs определяет доменные ошибки приложения и их отображение в HTTP статусы.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind - категория доменной ошибки.
type Kind string

// Категории ошибок приложения.
const (
	InvalidArgument Kind = "invalid_argument"
	AlreadyExists   Kind = "already_exists"
	NotFound        Kind = "not_found"
	Unauthenticated Kind = "unauthenticated"
	Internal        Kind = "internal"
)

// Сообщение для нетипизированных ошибок, чтобы не раскрывать
// внутренние детали хранилища клиенту.
const genericMessage = "Internal Server Error"

// Error - доменная ошибка с категорией, сообщением и причиной.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New создает доменную ошибку с сообщением.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf создает доменную ошибку с форматированным сообщением.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap создает доменную ошибку с сообщением и причиной.
func Wrap(kind Kind, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf возвращает категорию ошибки, по умолчанию Internal.
func KindOf(err error) Kind {
	if err == nil {
		return Internal
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		if domainErr.Kind == "" {
			return Internal
		}
		return domainErr.Kind
	}
	return Internal
}

// MessageOf возвращает сообщение ошибки, пригодное для клиента.
// Нетипизированные ошибки получают обобщенное сообщение.
func MessageOf(err error) string {
	if err == nil {
		return genericMessage
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return genericMessage
}

// HTTPStatus отображает категорию ошибки в HTTP статус.
func HTTPStatus(kind Kind) int {
	switch kind {
	case InvalidArgument, AlreadyExists:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
