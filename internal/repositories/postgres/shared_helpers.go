package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

// wrapNotFound maps gorm's record-not-found onto the repository
// sentinel so callers never import gorm.
func wrapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// applyPaging applies limit/offset when set; a zero limit means no cap.
func applyPaging(db *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		db = db.Limit(limit)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	return db
}
