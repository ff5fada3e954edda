package services

import (
	"errors"
	"strings"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// ErrGroupMissing is returned when a role group was never provisioned.
// It is a configuration error and is surfaced as a server error.
var ErrGroupMissing = errors.New("role group is not provisioned")

// notFoundOr converts gorm.ErrRecordNotFound into a NotFoundError and
// passes every other error through.
func notFoundOr(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFoundError(entity, id)
	}
	return err
}

// isDuplicateKey reports unique constraint violations from either driver.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
