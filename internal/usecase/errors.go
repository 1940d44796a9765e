package usecase

import (
	"errors"
	"sort"
	"strings"

	"hospital-turn-system/pkg/apperr"
	"hospital-turn-system/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// validationError flattens validator output into a single Validation error
// with a deterministic message.
func validationError(v *validator.CustomValidator, err error) error {
	fields := v.FormatValidationErrors(err)
	if len(fields) == 0 {
		return apperr.Wrap(apperr.Validation, "invalid input", err)
	}
	messages := make([]string, 0, len(fields))
	for _, message := range fields {
		messages = append(messages, message)
	}
	sort.Strings(messages)
	return apperr.New(apperr.Validation, strings.Join(messages, "; "))
}
