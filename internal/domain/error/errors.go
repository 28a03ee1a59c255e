package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest    = 4000
	CodeInsufficientFunds = 4001
	CodeInvalidAmount     = 4002
	CodeLimitExceeded     = 4003
	CodeUnauthorized      = 4030
	CodeDepositorLimit    = 4031
	CodeCutoffWindow      = 4032
	CodeNotFound          = 4040
	CodeAlreadyExists     = 4090
	CodeAlreadyRegistered = 4091
	CodeConflict          = 4092
	CodeInvalidState      = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Error kinds. Every error returned by the core wraps exactly one of these.
var (
	// ErrUnauthorized is returned when the actor may not act on the target
	ErrUnauthorized = errors.New("not authorized for this operation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidState is returned when an entity is in the wrong status for the operation
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrAlreadyExists is returned for duplicate rows (deposits, permissions, users)
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrLimitExceeded is returned on balance floor breaches, depositor caps and cutoff windows
	ErrLimitExceeded = errors.New("limit exceeded")

	// ErrInsufficientFunds is returned when a balance cannot cover a required debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrConflict is returned when concurrent modification is detected under lock
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when an amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// Specific errors, each wrapping its kind.
var (
	ErrUserNotFound         = fmt.Errorf("user: %w", ErrNotFound)
	ErrEventNotFound        = fmt.Errorf("event: %w", ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration: %w", ErrNotFound)
	ErrDepositNotFound      = fmt.Errorf("deposit: %w", ErrNotFound)
	ErrTransactionNotFound  = fmt.Errorf("transaction: %w", ErrNotFound)
	ErrPermissionNotFound   = fmt.Errorf("family permission: %w", ErrNotFound)
	ErrGroupNotFound        = fmt.Errorf("group: %w", ErrNotFound)

	ErrAlreadyRegistered = fmt.Errorf("user already registered for event: %w", ErrAlreadyExists)
	ErrDepositExists     = fmt.Errorf("user already holds an active deposit: %w", ErrAlreadyExists)
	ErrPermissionExists  = fmt.Errorf("family permission already pending or accepted: %w", ErrAlreadyExists)
	ErrDuplicateUser     = fmt.Errorf("user: %w", ErrAlreadyExists)

	ErrEventNotOpen         = fmt.Errorf("event is not open: %w", ErrInvalidState)
	ErrEventStarted         = fmt.Errorf("event already started: %w", ErrInvalidState)
	ErrAlreadyClosed        = fmt.Errorf("event already closed: %w", ErrInvalidState)
	ErrEventCanceled        = fmt.Errorf("event is canceled: %w", ErrInvalidState)
	ErrNotActive            = fmt.Errorf("deposit is not active: %w", ErrInvalidState)
	ErrRegistrationCanceled = fmt.Errorf("registration already canceled: %w", ErrInvalidState)
	ErrPermissionNotPending = fmt.Errorf("family permission is not pending: %w", ErrInvalidState)

	ErrDepositorLimitReached = fmt.Errorf("group depositor limit reached: %w", ErrLimitExceeded)
	ErrCutoffWindow          = fmt.Errorf("inside registration cutoff window: %w", ErrLimitExceeded)
	ErrBalanceFloor          = fmt.Errorf("balance below allowed floor: %w", ErrLimitExceeded)
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrDepositorLimitReached):
		return CodeDepositorLimit
	case errors.Is(err, ErrCutoffWindow):
		return CodeCutoffWindow
	case errors.Is(err, ErrAlreadyRegistered):
		return CodeAlreadyRegistered
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrAlreadyExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrLimitExceeded):
		return CodeLimitExceeded
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error kind to the HTTP status the API layer responds with
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrLimitExceeded), errors.Is(err, ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// BalanceFloorError describes a balance that would drop below a negative-balance limit
type BalanceFloorError struct {
	UserID     uint64
	Balance    string
	Required   string
	Floor      string
	FloorOwner string // "user" or "event"
}

// Error implements the error interface
func (e *BalanceFloorError) Error() string {
	return fmt.Sprintf("balance floor exceeded for user %d (balance: %s, required: %s, %s floor: %s)",
		e.UserID, e.Balance, e.Required, e.FloorOwner, e.Floor)
}

// Is reports the error as ErrBalanceFloor and therefore as ErrLimitExceeded
func (e *BalanceFloorError) Is(target error) bool {
	return target == ErrBalanceFloor || target == ErrLimitExceeded
}

// LogFields returns a map of fields for structured logging
func (e *BalanceFloorError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "balance_floor",
		"user_id":     e.UserID,
		"balance":     e.Balance,
		"required":    e.Required,
		"floor":       e.Floor,
		"floor_owner": e.FloorOwner,
		"error_code":  CodeLimitExceeded,
	}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// CutoffError reports a registration change attempted inside the cutoff window
type CutoffError struct {
	EventID     uint64
	CutoffHours int
	SecondsLeft int64
}

// Error implements the error interface
func (e *CutoffError) Error() string {
	return fmt.Sprintf("event %d starts in %ds, inside the %dh cutoff window", e.EventID, e.SecondsLeft, e.CutoffHours)
}

// Is reports the error as ErrCutoffWindow and therefore as ErrLimitExceeded
func (e *CutoffError) Is(target error) bool {
	return target == ErrCutoffWindow || target == ErrLimitExceeded
}

// LogFields returns a map of fields for structured logging
func (e *CutoffError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "cutoff_window",
		"event_id":     e.EventID,
		"cutoff_hours": e.CutoffHours,
		"seconds_left": e.SecondsLeft,
		"error_code":   CodeCutoffWindow,
	}
}

// LogFielder is implemented by errors that carry structured context
type LogFielder interface {
	LogFields() map[string]any
}

// LogFields extracts structured fields from err, falling back to the message
func LogFields(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
