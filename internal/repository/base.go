// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"gullyconnect/internal/database"
	"gullyconnect/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}

// translateError maps driver-level failures onto application errors. A
// foreign key violation on a child insert means the referenced resource is
// gone, which callers should see as not-found rather than a 500.
func translateError(err error, resource string, id interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return models.NewNotFoundError(resource, id)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return models.NewRetryableError(err)
		}
	}
	return err
}
