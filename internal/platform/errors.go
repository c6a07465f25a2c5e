package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized означает что токен отсутствует, истек или отозван.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoChanges возвращает платформа на PATCH профиля без изменений.
	// Это не ошибка для пользователя, вызывающий обязан проглотить ее молча.
	ErrNoChanges = errors.New("no changes")
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("platform responded with status %d", e.StatusCode)
}
