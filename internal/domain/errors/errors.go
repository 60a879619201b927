package errors

import "errors"

var (
	ErrEmptyTitle       = errors.New("EMPTY_TITLE")
	ErrEmptyText        = errors.New("EMPTY_TEXT")
	ErrEmptyFileName    = errors.New("EMPTY_FILE_NAME")
	ErrMissingFields    = errors.New("MISSING_FIELDS")
	ErrInvalidStatus    = errors.New("INVALID_STATUS")
	ErrNoSession        = errors.New("NO_SESSION")
	ErrAlreadyOnboarded = errors.New("ALREADY_ONBOARDED")
	ErrNotFound         = errors.New("NOT_FOUND")
	ErrInvalidInput     = errors.New("INVALID_INPUT")
)

// DomainError представляет доменную ошибку с кодом и сообщением
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError создает новую доменную ошибку
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidation сообщает, относится ли ошибка к ошибкам валидации ввода
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrEmptyFileName) ||
		errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidInput)
}
