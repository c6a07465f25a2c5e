package bookService

import "errors"

var (
	ErrIncorrectPage  = errors.New("incorrect page")
	ErrEmailNotLinked = errors.New("device email not linked")
)

// ValidationError — клиентская ошибка формы, до сети такой запрос не доходит.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
