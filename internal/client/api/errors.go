package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound сервер сообщил, что персонаж не существует
	ErrNotFound = errors.New("character not found")

	// ErrRequestFailed любая другая ошибка транспорта или сервера.
	// Используется как цель errors.Is для *RequestFailedError.
	ErrRequestFailed = errors.New("request failed")
)

// RequestFailedError описывает неудачный запрос к API
type RequestFailedError struct {
	Cause      error  // исходная ошибка
	Op         string // операция клиента, например "fetch all"
	StatusCode int    // HTTP статус, 0 если ответ не получен
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *RequestFailedError) Unwrap() error {
	return e.Cause
}

// Is позволяет проверять ошибку через errors.Is(err, ErrRequestFailed)
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// statusError ответ сервера со статусом вне 2xx
type statusError struct {
	Message    string
	StatusCode int
}

func (e *statusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// requestFailed оборачивает err в *RequestFailedError, сохраняя HTTP статус
func requestFailed(op string, err error) error {
	rf := &RequestFailedError{Op: op, Cause: err}
	var se *statusError
	if errors.As(err, &se) {
		rf.StatusCode = se.StatusCode
	}
	return rf
}
