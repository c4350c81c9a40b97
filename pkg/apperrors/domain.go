package apperrors

import (
	"net/http"
)

// Factories and predefined values for the errors the SkillLink domain raises.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidTransition rejects a request-state edge outside the machine.
func ErrInvalidTransition(message string) *AppError {
	return New(CodeInvalidTransition, "solicitudes", message, http.StatusConflict)
}

// --- auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
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

var ErrUserBlocked = New(
	CodeForbidden,
	"auth",
	"Your account has been blocked",
	http.StatusForbidden,
)

var ErrRegistrationMethodMismatch = New(
	CodeConflict,
	"auth",
	"This email is already registered with another sign-in method",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrGoogleError = New(
	CodeExternalServiceError,
	"auth",
	"Identity provider error",
	http.StatusBadGateway,
)

// --- perfiles ---

var ErrWorkerProfileRequired = New(
	CodeInvalidOperation,
	"perfiles",
	"A worker profile is required for this operation",
	http.StatusBadRequest,
)

var ErrWorkerProfileExists = New(
	CodeAlreadyExists,
	"perfiles",
	"Worker profile already exists for this user",
	http.StatusConflict,
)

// --- servicios / membresias ---

var ErrMembershipLimit = New(
	CodeLimitExceeded,
	"membresias",
	"Free plan limit of published services reached",
	http.StatusForbidden,
)

var ErrServiceNotApproved = New(
	CodeInvalidStatus,
	"servicios",
	"Only approved services can be requested",
	http.StatusBadRequest,
)

// --- solicitudes ---

var ErrOwnServiceRequest = New(
	CodeInvalidOperation,
	"solicitudes",
	"You cannot request your own service",
	http.StatusBadRequest,
)

var ErrWorkerUnavailable = New(
	CodeInvalidOperation,
	"solicitudes",
	"The worker is not available in the selected time window",
	http.StatusBadRequest,
)

// --- calificaciones ---

var ErrRequestNotCompleted = New(
	CodeInvalidStatus,
	"calificaciones",
	"Only completed requests can be rated",
	http.StatusBadRequest,
)

var ErrRatingExists = New(
	CodeConflict,
	"calificaciones",
	"This request has already been rated",
	http.StatusConflict,
)

// --- chat ---

var ErrNotRequestParticipant = New(
	CodeForbidden,
	"chat",
	"You are not a participant of this request",
	http.StatusForbidden,
)

// --- moderacion ---

var ErrModerationClosed = New(
	CodeInvalidStatus,
	"moderacion",
	"This moderation record has already been resolved",
	http.StatusBadRequest,
)

// --- files ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
