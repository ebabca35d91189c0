package usecase

import "errors"

const (
	CodeReadFailed       = "READ_FAILED"
	CodeWriteFailed      = "WRITE_FAILED"
	CodeProcessingFailed = "PROCESSING_FAILED"
	CodeUnsupportedInput = "UNSUPPORTED_INPUT"
)

// ErrCancelled is returned by file selectors when no file was chosen. It is
// not a failure: the run is simply skipped.
var ErrCancelled = errors.New("file selection cancelled")

func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// ProcessingError is the single failure kind surfaced to the user for a run.
type ProcessingError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func IsProcessingError(err error) bool {
	var pe *ProcessingError
	return errors.As(err, &pe)
}

// ErrorCode returns the code of the first ProcessingError in err's chain.
func ErrorCode(err error) string {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func newProcessingError(code, prefix string, err error) *ProcessingError {
	return &ProcessingError{
		Code:    code,
		Message: prefix + ": " + err.Error(),
		Err:     err,
	}
}
