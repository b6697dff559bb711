package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := NotFound("Сотрудник с ID=%d не найден", 999)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, "Сотрудник с ID=999 не найден", err.Error())
}

func TestAppError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create user: %w", Duplicate("Логин '%s' уже используется.", "ivanov"))

	assert.True(t, errors.Is(err, ErrDuplicate))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, CodeDuplicate, appErr.Code)
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := Wrap(cause, CodeInvalidInput, "bad payload")

	assert.Equal(t, "bad payload: disk I/O error", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Wrap(nil, CodeNotFound, "x"))
}
