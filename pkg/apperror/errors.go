package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err carries the given application code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// CodeExpired lets callers distinguish expiry from other state errors
// without matching on messages.
const CodeExpired = "STA_010"

// ---- Validation (VER) — rejected before any state change ----

// Validation returns a generic malformed-input error.
func Validation(message string) *AppError {
	return New("VER_001", message, http.StatusBadRequest)
}

func ErrInvalidWalletAddress(network string) *AppError {
	return New("VER_002", fmt.Sprintf("Invalid wallet address for network %s", network), http.StatusBadRequest)
}

func ErrUnsupportedNetwork() *AppError {
	return New("VER_003", "Unsupported wallet network", http.StatusBadRequest)
}

func ErrUnsupportedMethod() *AppError {
	return New("VER_004", "Unsupported verification method", http.StatusBadRequest)
}

func ErrMalformedProof(message string) *AppError {
	return New("VER_005", message, http.StatusBadRequest)
}

// ---- State (STA) — wrong status for the operation, request unaffected ----

func ErrInvalidState(message string) *AppError {
	return New("STA_001", message, http.StatusConflict)
}

func ErrNonceUsed() *AppError {
	return New("STA_002", "Nonce has already been used", http.StatusConflict)
}

func ErrStepOutOfRange() *AppError {
	return New("STA_003", "Step number is out of range or already completed", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("STA_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrExpired reports an elapsed TTL; the caller lazily transitions the
// request to expired as a side effect.
func ErrExpired() *AppError {
	return New(CodeExpired, "Verification request has expired", http.StatusGone)
}

// ---- Proof (PRF) — transitions the request to rejected ----

func ErrProofInvalid(reason string) *AppError {
	return New("PRF_001", reason, http.StatusUnprocessableEntity)
}

func ErrWalletMismatch() *AppError {
	return New("PRF_002", "Signature wallet does not match the verification wallet", http.StatusUnprocessableEntity)
}

// ---- Authorization (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Not authorized for this operation", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Crypto (SYS) ----

// ErrCryptoFailure marks a cipher or verifier malfunction. It is never
// folded into a proof failure: "could not verify" and "verification
// failed" feed the risk signal differently.
func ErrCryptoFailure(err error) *AppError {
	return Wrap("SYS_001", "Cryptographic operation failed", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_003 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_003", "Internal server error", http.StatusInternalServerError, err)
}
