// Package repository provides data persistence implementations for
// categories, field definitions and assets.
package repository

import (
	"database/sql"
	"strings"

	apperrors "github.com/ativoshub/ativos/internal/errors"
)

// rowsAffected maps a zero-row write to the entity's not-found error
func rowsAffected(result sql.Result, notFound error, msg string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, msg)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
