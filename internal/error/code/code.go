package code

// HTTP status codes.
const (
	// StatusOK - 200
	StatusOK = 200
	// StatusCreated - 201
	StatusCreated = 201
	// StatusBadRequest - 400
	StatusBadRequest = 400
	// StatusUnauthorized - 401
	StatusUnauthorized = 401
	// StatusNotFound - 404
	StatusNotFound = 404
	// StatusInternalServerError - 500
	StatusInternalServerError = 500
)

// Common codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
	// ErrTokenInvalid - 401: missing or invalid session.
	ErrTokenInvalid
	// ErrCreated - 201: resource created.
	ErrCreated
)

// Admin codes (101xxx).
const (
	// ErrAdminCredentials - 401: wrong email or password.
	ErrAdminCredentials int = iota + 101001
)

// Database codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
)

// Tour codes (106xxx).
const (
	// ErrTourNotFound - 404: tour does not exist.
	ErrTourNotFound int = iota + 106000
	// ErrTourInvalid - 400: tour payload failed validation.
	ErrTourInvalid
)

// Asset codes (107xxx).
const (
	// ErrAssetMissingFile - 400: upload without a file.
	ErrAssetMissingFile int = iota + 107000
	// ErrAssetInvalidID - 400: asset id or url cannot be parsed.
	ErrAssetInvalidID
	// ErrAssetNotFound - 404: no stored object for the asset id.
	ErrAssetNotFound
	// ErrAssetUpload - 500: every file in the upload failed.
	ErrAssetUpload
	// ErrAssetDelete - 500: object store refused the delete.
	ErrAssetDelete
)

// Notification codes (108xxx).
const (
	// ErrMailDelivery - 500: email provider failed.
	ErrMailDelivery int = iota + 108000
)
