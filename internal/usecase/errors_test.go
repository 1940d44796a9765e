package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	uniqueViolation := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_users_username",
	}

	if !isDuplicateKeyError(uniqueViolation, "username") {
		t.Error("23505 on a username constraint should classify as duplicate")
	}
	if !isDuplicateKeyError(fmt.Errorf("create user: %w", uniqueViolation), "username") {
		t.Error("classification should see through error wrapping")
	}
	if isDuplicateKeyError(uniqueViolation, "email") {
		t.Error("a username constraint should not match an email lookup")
	}
	if isDuplicateKeyError(errors.New("connection reset"), "username") {
		t.Error("a plain error is not a duplicate key violation")
	}
	if isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_users_username"}, "username") {
		t.Error("a foreign key code should not classify as duplicate")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	fkViolation := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "fk_appointments_doctor",
	}

	if !isForeignKeyError(fkViolation, "doctor") {
		t.Error("23503 on a doctor constraint should classify as foreign key")
	}
	if !isForeignKeyError(fkViolation, "") {
		t.Error("an empty constraint filter should match any 23503")
	}
	if isForeignKeyError(&pgconn.PgError{Code: "23505"}, "") {
		t.Error("a unique violation should not classify as foreign key")
	}
}
