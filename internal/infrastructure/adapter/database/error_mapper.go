package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors surfacing at transaction boundaries to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps err to a domain error. Errors that already carry a domain kind pass through.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if domainErr.ErrorCode(err) != domainErr.CodeInternalServer {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	}

	return m.classifier.Map(err, domainErr.ErrNotFound, domainErr.ErrAlreadyExists)
}

// IsRetryable reports whether a transaction that failed with err may be run again
func (m *ErrorMapper) IsRetryable(err error) bool {
	return errors.Is(err, domainErr.ErrConflict)
}
