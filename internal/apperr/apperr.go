// Package apperr описывает категории ошибок предметной области и их отображение на HTTP-статусы.
package apperr

import (
	"errors"
	"net/http"
)

// Kind - категория ошибки
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPaymentRequired
	KindForbidden
	KindSignatureInvalid
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPaymentRequired:
		return "payment_required"
	case KindForbidden:
		return "forbidden"
	case KindSignatureInvalid:
		return "signature_invalid"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Error - ошибка с категорией
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New - создаёт ошибку заданной категории
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap - оборачивает причину в ошибку заданной категории
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }
func Conflict(message string) *Error   { return New(KindConflict, message) }
func Forbidden(message string) *Error  { return New(KindForbidden, message) }

// Upstream - ошибка внешнего сервиса, сообщение внешнего сервиса сохраняется
func Upstream(err error) *Error {
	return Wrap(KindUpstream, "upstream failure", err)
}

// KindOf - возвращает категорию первой категоризированной ошибки в цепочке
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus - HTTP-статус для ошибки
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindSignatureInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindPaymentRequired:
		return http.StatusPaymentRequired
	case KindForbidden:
		return http.StatusForbidden
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message - текст ошибки, пригодный для отдачи клиенту. Внутренние ошибки не раскрываются
func Message(err error) string {
	if KindOf(err) == KindInternal {
		return "Internal Server Error"
	}
	return err.Error()
}
