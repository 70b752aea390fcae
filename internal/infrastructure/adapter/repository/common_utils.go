package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes of integrity constraint violations
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// ConstraintKind returns the kind of violated constraint, and false when
// err is not a constraint violation
func (c *ErrorClassifier) ConstraintKind(err error) (errs.ConstraintKind, bool) {
	if err == nil {
		return "", false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return errs.ConstraintUnique, true
		case sqlite3.ErrConstraintCheck:
			return errs.ConstraintCheck, true
		case sqlite3.ErrConstraintForeignKey:
			return errs.ConstraintForeignKey, true
		case sqlite3.ErrConstraintNotNull:
			return errs.ConstraintNotNull, true
		}
		if sqliteErr.Code != sqlite3.ErrConstraint {
			return "", false
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errs.ConstraintUnique, true
		case pgCheckViolation:
			return errs.ConstraintCheck, true
		case pgForeignKeyViolation:
			return errs.ConstraintForeignKey, true
		case pgNotNullViolation:
			return errs.ConstraintNotNull, true
		}
		return "", false
	}

	return c.kindFromMessage(err.Error())
}

// kindFromMessage is the fallback for drivers that only expose text
func (c *ErrorClassifier) kindFromMessage(msg string) (errs.ConstraintKind, bool) {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "unique constraint"), strings.Contains(msg, "duplicate key"):
		return errs.ConstraintUnique, true
	case strings.Contains(msg, "check constraint"):
		return errs.ConstraintCheck, true
	case strings.Contains(msg, "foreign key"):
		return errs.ConstraintForeignKey, true
	case strings.Contains(msg, "not null constraint"), strings.Contains(msg, "violates not-null"):
		return errs.ConstraintNotNull, true
	}
	return "", false
}

// IsDuplicateKeyError checks if the error is a unique or primary key violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	kind, ok := c.ConstraintKind(err)
	return ok && kind == errs.ConstraintUnique
}

// IsBusyError checks if the error is caused by a lock held by another writer
func (c *ErrorClassifier) IsBusyError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return err != nil && strings.Contains(err.Error(), "database is locked")
}

// handleDatabaseError standardizes database error handling: constraint
// violations become *errs.ConstraintError, context errors are returned
// unchanged and everything else is wrapped as a connection error with the
// driver error still in the chain. Nothing is retried.
func handleDatabaseError(logger coreport.Logger, classifier *ErrorClassifier, operation, entityName string, err error, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn(fmt.Sprintf("Context ended when %s", operation), fields)
		return err
	}

	if kind, ok := classifier.ConstraintKind(err); ok {
		fields["constraint"] = string(kind)
		logger.Warn(fmt.Sprintf("Constraint violated when %s", operation), fields)
		return errs.NewConstraintError(entityName, kind, err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	if classifier.IsBusyError(err) {
		fields["busy"] = true
	}
	logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
}

// optionalString returns nil for a nil or empty pointer
func optionalString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
