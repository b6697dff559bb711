package repository

import (
	"errors"

	"gorm.io/gorm"
)

// isNotFound проверяет ErrRecordNotFound, для которого репозитории возвращают (nil, nil)
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
