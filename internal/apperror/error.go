package apperror

import "fmt"

type AppError struct {
	Code    string // код ошибки, например NOT_FOUND
	Message string // сообщение для пользователя
	Err     error  // исходная ошибка (опционально)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по коду, чтобы errors.Is(err, ErrNotFound) срабатывал для любых сообщений
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(err error, code, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Err: err}
}

func NotFound(format string, args ...interface{}) *AppError {
	return New(CodeNotFound, fmt.Sprintf(format, args...))
}

func Duplicate(format string, args ...interface{}) *AppError {
	return New(CodeDuplicate, fmt.Sprintf(format, args...))
}

func InvalidReference(format string, args ...interface{}) *AppError {
	return New(CodeInvalidReference, fmt.Sprintf(format, args...))
}

func InvalidInput(format string, args ...interface{}) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf(format, args...))
}
