package gormdb

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notFound maps gorm's sentinel onto the domain error of the caller.
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// duplicate maps a unique-key violation onto target. Needs TranslateError.
func duplicate(err, target error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return target
	}
	return err
}

// affected turns "no row touched" into target.
func affected(res *gorm.DB, target error) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return target
	}
	return nil
}

var forUpdate = clause.Locking{Strength: "UPDATE"}

const defaultPageSize = 50

func pageSize(limit int) int {
	if limit <= 0 || limit > 200 {
		return defaultPageSize
	}
	return limit
}
