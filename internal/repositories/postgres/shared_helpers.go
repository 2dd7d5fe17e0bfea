package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sports-camp360/camp-service/internal/repositories"
)

// mapError translates gorm errors into repository sentinels. The gorm config
// must set TranslateError so unique violations surface as ErrDuplicatedKey.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicate
	default:
		return err
	}
}

// applyOrder orders by a whitelisted column. Unknown columns fall back to
// fallback; direction defaults to descending.
func applyOrder(query *gorm.DB, sortBy, sortOrder string, allowed map[string]string, fallback string) *gorm.DB {
	column, ok := allowed[sortBy]
	if !ok {
		column = fallback
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return query.Order(column + " " + direction)
}

func applyLimit(query *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return query.Limit(limit)
	}
	return query
}
