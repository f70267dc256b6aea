package errors

import "net/http"

var (
	ErrRegionNotFound = New(
		"REGION_NOT_FOUND",
		"No administrative region contains this point",
		http.StatusNotFound,
	)

	ErrCodeNotFound = New(
		"CODE_NOT_FOUND",
		"Postal code not found",
		http.StatusNotFound,
	)

	ErrInvalidPostalCode = New(
		"INVALID_POSTAL_CODE",
		"Postal code must be 4 or 7 digits, hyphen optional",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrStoreError = New(
		"STORE_ERROR",
		"Artifact store operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
