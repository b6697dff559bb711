package apperror

const (
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicate        = "DUPLICATE"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeInvalidInput     = "INVALID_INPUT"
)
