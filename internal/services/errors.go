package services

import (
	"errors"

	"gorm.io/gorm"
)

// Store error classification. The connection is opened with TranslateError so
// unique-index violations surface as gorm.ErrDuplicatedKey; that constraint,
// not the advisory existence pre-checks, is what resolves concurrent
// duplicate writes.

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
