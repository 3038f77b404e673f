package services

import (
	"errors"

	"techsphere-api/models"

	"gorm.io/gorm"
)

// lookupError turns a repository read error into a not found error carrying
// msg, or an internal error.
func lookupError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: msg}
	}
	return models.ErrorInternalServer{Err: err}
}

func internalError(err error) error {
	return models.ErrorInternalServer{Err: err}
}

func emailConflict() error {
	return models.ErrorConflict{
		Message: models.MessageUserExists,
		Fields:  map[string][]string{"email": {models.MessageEmailInUse}},
	}
}
