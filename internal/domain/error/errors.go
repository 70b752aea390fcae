package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4000
	CodeInvalidAmount       = 4002
	CodeMissingWallet       = 4003
	CodeSameWallet          = 4004
	CodeConstraintViolation = 4005
	CodeDuplicateBudget     = 4090
	CodeNotFound            = 4040
	CodeResetNotAllowed     = 4030

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
	CodeIntegrity          = 5001
)

// Validation errors, raised before any write is attempted
var (
	// ErrInvalidAmount is returned when an amount cannot be parsed or is not finite
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is below zero
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidTransactionType is returned for a type outside income/expense/transfer
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidWalletType is returned for a wallet type outside cash/bank
	ErrInvalidWalletType = errors.New("invalid wallet type")

	// ErrInvalidFrequency is returned for a bill frequency outside monthly/quarterly/yearly
	ErrInvalidFrequency = errors.New("invalid bill frequency")

	// ErrInvalidCurrency is returned for an unsupported currency code
	ErrInvalidCurrency = errors.New("unsupported currency")

	// ErrInvalidLocale is returned for an unsupported locale
	ErrInvalidLocale = errors.New("unsupported locale")

	// ErrInvalidPaymentStatus is returned for a bill payment status outside cleared/pending
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrEmptyName is returned when a required name is blank
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidLimit is returned when a budget limit is not positive
	ErrInvalidLimit = errors.New("monthly limit must be positive")

	// ErrMissingWallet is returned when an income or expense has no wallet
	ErrMissingWallet = errors.New("wallet is required")

	// ErrMissingTargetWallet is returned when a transfer has no target wallet
	ErrMissingTargetWallet = errors.New("target wallet is required for transfers")

	// ErrSameWallet is returned when a transfer's source and target are identical
	ErrSameWallet = errors.New("transfer source and target wallet must differ")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")
)

// Storage and lifecycle errors
var (
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrWalletNotFound is returned when a balance mutation targets a missing wallet
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrBillNotFound is returned when a bill mutation targets a missing bill
	ErrBillNotFound = errors.New("bill not found")

	// ErrUserNotFound is returned when no local user row exists
	ErrUserNotFound = errors.New("user not found")

	// ErrBudgetNotFound is returned when a budget mutation targets a missing budget
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDuplicateBudget is returned when a category already has a budget
	ErrDuplicateBudget = errors.New("budget already exists for category")

	// ErrIntegrity is returned when a freshly inserted row cannot be read back
	ErrIntegrity = errors.New("record missing after insert")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrSchemaTooNew is returned when the database was migrated by a newer build
	ErrSchemaTooNew = errors.New("database schema is newer than this build")

	// ErrResetNotAllowed is returned when a database reset is requested outside development
	ErrResetNotAllowed = errors.New("database reset is only allowed in development")

	// ErrNotInitialized is returned when repositories are requested before initialization
	ErrNotInitialized = errors.New("storage not initialized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

var validationErrors = []error{
	ErrInvalidAmount,
	ErrNegativeAmount,
	ErrInvalidTransactionType,
	ErrInvalidWalletType,
	ErrInvalidFrequency,
	ErrInvalidCurrency,
	ErrInvalidLocale,
	ErrInvalidPaymentStatus,
	ErrEmptyName,
	ErrInvalidLimit,
	ErrMissingWallet,
	ErrMissingTargetWallet,
	ErrSameWallet,
	ErrInvalidRequest,
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateBudget):
		return CodeDuplicateBudget
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrMissingWallet), errors.Is(err, ErrMissingTargetWallet):
		return CodeMissingWallet
	case errors.Is(err, ErrSameWallet):
		return CodeSameWallet
	case IsValidationError(err):
		return CodeValidation
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrResetNotAllowed):
		return CodeResetNotAllowed
	case errors.Is(err, ErrIntegrity):
		return CodeIntegrity
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ConstraintKind names the class of a violated database constraint
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintNotNull    ConstraintKind = "not_null"
)

// ConstraintError reports a unique, check, foreign key or not-null violation.
// It matches ErrConstraintViolation with errors.Is and unwraps to the
// driver error (or to a more specific domain sentinel such as ErrDuplicateBudget).
type ConstraintError struct {
	Entity string
	Kind   ConstraintKind
	Err    error
}

// Error implements the error interface for ConstraintError
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint violated on %s: %v", e.Kind, e.Entity, e.Err)
}

// Unwrap returns the underlying error
func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrConstraintViolation
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// LogFields returns a map of fields for structured logging
func (e *ConstraintError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "constraint_violation",
		"entity":     e.Entity,
		"kind":       string(e.Kind),
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewConstraintError creates a new constraint violation error
func NewConstraintError(entity string, kind ConstraintKind, err error) error {
	return &ConstraintError{
		Entity: entity,
		Kind:   kind,
		Err:    err,
	}
}

// TransactionError represents a failed transaction creation
type TransactionError struct {
	Type           string
	Amount         float64
	WalletID       string
	TargetWalletID string
	Err            error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s transaction of %.2f failed (wallet: %q, target: %q): %v",
		e.Type, e.Amount, e.WalletID, e.TargetWalletID, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "transaction_error",
		"type":             e.Type,
		"amount":           e.Amount,
		"wallet_id":        e.WalletID,
		"target_wallet_id": e.TargetWalletID,
		"error":            e.Err.Error(),
		"error_code":       ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(txType string, amount float64, walletID, targetWalletID *string, err error) error {
	return &TransactionError{
		Type:           txType,
		Amount:         amount,
		WalletID:       deref(walletID),
		TargetWalletID: deref(targetWalletID),
		Err:            err,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsValidationError checks if the error was raised by input validation
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConstraintError checks if the error is a database constraint violation
func IsConstraintError(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrBillNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrBudgetNotFound)
}
