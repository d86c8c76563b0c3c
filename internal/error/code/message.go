package code

var codeMessageMap = map[int]string{
	ErrSuccess:      "success",
	ErrUnknown:      "unknown error",
	ErrBind:         "invalid request body",
	ErrValidation:   "validation failed",
	ErrTokenInvalid: "unauthorized",
	ErrCreated:      "created",

	ErrAdminCredentials: "unauthorized",

	ErrDatabase: "database error",

	ErrTourNotFound: "tour not found",
	ErrTourInvalid:  "invalid tour",

	ErrAssetMissingFile: "no file uploaded",
	ErrAssetInvalidID:   "invalid asset id",
	ErrAssetNotFound:    "asset not found",
	ErrAssetUpload:      "upload failed",
	ErrAssetDelete:      "asset delete failed",

	ErrMailDelivery: "email delivery failed",
}

var codeStatusMap = map[int]int{
	ErrSuccess:      StatusOK,
	ErrUnknown:      StatusInternalServerError,
	ErrBind:         StatusBadRequest,
	ErrValidation:   StatusBadRequest,
	ErrTokenInvalid: StatusUnauthorized,
	ErrCreated:      StatusCreated,

	ErrAdminCredentials: StatusUnauthorized,

	ErrDatabase: StatusInternalServerError,

	ErrTourNotFound: StatusNotFound,
	ErrTourInvalid:  StatusBadRequest,

	ErrAssetMissingFile: StatusBadRequest,
	ErrAssetInvalidID:   StatusBadRequest,
	ErrAssetNotFound:    StatusNotFound,
	ErrAssetUpload:      StatusInternalServerError,
	ErrAssetDelete:      StatusInternalServerError,

	ErrMailDelivery: StatusInternalServerError,
}

// GetMessage returns the default message for a code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for a code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
