package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
	"gorm.io/gorm"
)

// nextID allocates the id of a new row of an auto-keyed table.
func nextID(ctx context.Context, db *gorm.DB, table string) (int64, error) {
	var id int64
	err := db.WithContext(ctx).Table(table).Select("COALESCE(MAX(id), 0) + 1").Scan(&id).Error
	if err != nil {
		return 0, MapGormErrorToDomain(err)
	}
	if id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
