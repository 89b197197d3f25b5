package errors

import "net/http"

var (
	ErrPerumahanNotFound = New(
		"PERUMAHAN_NOT_FOUND",
		"Perumahan not found",
		http.StatusNotFound,
	)

	ErrSlugConflict = New(
		"SLUG_CONFLICT",
		"Slug is already used by another perumahan",
		http.StatusConflict,
	)

	ErrValidation = New(
		"VALIDATION_FAILED",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnsupportedPhoto = New(
		"UNSUPPORTED_PHOTO",
		"Photo must be a jpg, png, webp or gif image",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Photo storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
