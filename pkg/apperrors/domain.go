package apperrors

import (
	"fmt"
	"net/http"
)

// Predefined errors and factories for the identity, connection and discovery
// domains. Handlers and services return these; the Gin handler in handlers.go
// maps them onto HTTP responses.

// --- Identity & auth ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"user",
	"Role must be either 'mentor' or 'mentee'",
	http.StatusBadRequest,
)

var ErrEmptyProfileUpdate = New(
	CodeValidationFailed,
	"user",
	"No update data provided",
	http.StatusBadRequest,
)

// --- Connections ---

var ErrSelfConnection = New(
	CodeInvalidOperation,
	"connection",
	"You cannot send a connection request to yourself",
	http.StatusBadRequest,
)

var ErrRecipientNotFound = New(
	CodeNotFound,
	"connection",
	"Recipient user not found",
	http.StatusNotFound,
)

var ErrConnectionNotFound = New(
	CodeNotFound,
	"connection",
	"Connection not found",
	http.StatusNotFound,
)

// ErrRequestAlreadyPending: the acting user already has an outgoing pending
// request for this pair.
var ErrRequestAlreadyPending = New(
	CodeConflict,
	"connection",
	"Connection request already sent and is pending",
	http.StatusConflict,
)

// ErrCounterpartRequestPending: the other side already sent a pending request;
// the acting user should resolve it instead of creating a mirror record.
var ErrCounterpartRequestPending = New(
	CodeConflict,
	"connection",
	"This user has already sent you a pending request. Check your received requests.",
	http.StatusConflict,
)

var ErrAlreadyConnected = New(
	CodeConflict,
	"connection",
	"You are already connected with this user",
	http.StatusConflict,
)

// Declined records are terminal in both directions; the message names which
// side initiated the declined request.
var ErrRequestPreviouslyDeclined = New(
	CodeForbidden,
	"connection",
	"Your previous request to this user was declined. Cannot send again.",
	http.StatusForbidden,
)

var ErrDeclinedByActor = New(
	CodeForbidden,
	"connection",
	"You previously declined a request from this user. Cannot send request.",
	http.StatusForbidden,
)

var ErrNotRecipient = New(
	CodeForbidden,
	"connection",
	"You are not authorized to manage this request",
	http.StatusForbidden,
)

var ErrNotParticipant = New(
	CodeForbidden,
	"connection",
	"You are not authorized to modify this connection",
	http.StatusForbidden,
)

var ErrDeclinedImmutable = New(
	CodeInvalidStatus,
	"connection",
	"Declined connection records cannot be deleted",
	http.StatusBadRequest,
)

// ErrRequestNotPending names the current status so the client can tell a
// double-accept from a stale list entry.
func ErrRequestNotPending(current string) *AppError {
	return New(
		CodeInvalidStatus,
		"connection",
		fmt.Sprintf("This request is no longer pending (current status: %s)", current),
		http.StatusBadRequest,
	)
}

// ErrConnectionConflict wraps a store-level unique violation on the pair key.
// Raised when two concurrent requests race past the application check.
func ErrConnectionConflict(err error) *AppError {
	return Wrap(err, CodeConflict, "connection", "A connection record already exists for this pair", http.StatusConflict)
}

// --- Discovery ---

var ErrInvalidRoleFilter = New(
	CodeValidationFailed,
	"discovery",
	"Invalid role filter specified",
	http.StatusBadRequest,
)
