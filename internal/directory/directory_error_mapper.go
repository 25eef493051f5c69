package directory

import (
	"errors"

	directoryerrors "go-workforce/internal/directory/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return directoryerrors.ErrEmployeeNotFound
	}

	return err
}
