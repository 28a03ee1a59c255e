package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestSpecificErrorsWrapTheirKind(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{"EventNotFound", ErrEventNotFound, ErrNotFound},
		{"AlreadyRegistered", ErrAlreadyRegistered, ErrAlreadyExists},
		{"AlreadyClosed", ErrAlreadyClosed, ErrInvalidState},
		{"NotActive", ErrNotActive, ErrInvalidState},
		{"DepositorLimit", ErrDepositorLimitReached, ErrLimitExceeded},
		{"Cutoff", ErrCutoffWindow, ErrLimitExceeded},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.kind) {
				t.Errorf("%v does not wrap %v", tc.err, tc.kind)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Nil", nil, 0},
		{"InsufficientFunds", NewInsufficientFundsError(1, "50.00", "10.00"), CodeInsufficientFunds},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"UserNotFound", ErrUserNotFound, CodeNotFound},
		{"AlreadyRegistered", ErrAlreadyRegistered, CodeAlreadyRegistered},
		{"DepositExists", ErrDepositExists, CodeAlreadyExists},
		{"DepositorLimit", ErrDepositorLimitReached, CodeDepositorLimit},
		{"BalanceFloor", &BalanceFloorError{UserID: 1}, CodeLimitExceeded},
		{"Cutoff", &CutoffError{EventID: 1}, CodeCutoffWindow},
		{"Unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrAlreadyClosed), CodeInvalidState},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrUnauthorized, http.StatusForbidden},
		{ErrEventNotFound, http.StatusNotFound},
		{ErrPermissionExists, http.StatusConflict},
		{ErrConflict, http.StatusConflict},
		{ErrAlreadyClosed, http.StatusUnprocessableEntity},
		{&BalanceFloorError{}, http.StatusUnprocessableEntity},
		{ErrInvalidAmount, http.StatusBadRequest},
		{ErrDatabaseConnection, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if got := HTTPStatus(tc.err); got != tc.expected {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
		}
	}
}

func TestBalanceFloorError(t *testing.T) {
	err := fmt.Errorf("register: %w", &BalanceFloorError{
		UserID:     42,
		Balance:    "5.00",
		Required:   "15.00",
		Floor:      "-5.00",
		FloorOwner: "event",
	})

	if !errors.Is(err, ErrBalanceFloor) || !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("expected balance floor error to match ErrBalanceFloor and ErrLimitExceeded")
	}

	fields := LogFields(err)
	if fields["user_id"] != uint64(42) || fields["floor_owner"] != "event" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestLogFieldsFallback(t *testing.T) {
	fields := LogFields(ErrEventNotFound)
	if fields["error_code"] != CodeNotFound {
		t.Errorf("expected code %d, got %v", CodeNotFound, fields["error_code"])
	}
	if !IsNotFoundError(ErrDepositNotFound) {
		t.Errorf("expected deposit not found to be a not-found error")
	}
}
