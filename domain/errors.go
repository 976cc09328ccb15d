package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnsupportedSchema   = errors.New("unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrUnknownNetwork      = errors.New("unknown network")
)

// ErrorKind is the closed set of failures surfaced to callers.
type ErrorKind string

const (
	KindContractMismatch     ErrorKind = "ContractMismatch"
	KindOwnerNotFound        ErrorKind = "OwnerNotFound"
	KindNamehashMismatch     ErrorKind = "NamehashMismatch"
	KindRecordNotFound       ErrorKind = "RecordNotFound"
	KindExpiredName          ErrorKind = "ExpiredName"
	KindUnsupportedNamespace ErrorKind = "UnsupportedNamespace"
	KindUnsupportedNetwork   ErrorKind = "UnsupportedNetwork"
	KindResolverNotFound     ErrorKind = "ResolverNotFound"
	KindTextRecordNotFound   ErrorKind = "TextRecordNotFound"
	KindRetrieveURIFailed    ErrorKind = "RetrieveURIFailed"
	KindURIParsingError      ErrorKind = "URIParsingError"
)

var kindStatus = map[ErrorKind]int{
	KindContractMismatch:     http.StatusBadRequest,
	KindOwnerNotFound:        http.StatusNotFound,
	KindNamehashMismatch:     http.StatusNotFound,
	KindRecordNotFound:       http.StatusNotFound,
	KindExpiredName:          http.StatusGone,
	KindUnsupportedNamespace: http.StatusNotImplemented,
	KindUnsupportedNetwork:   http.StatusNotImplemented,
	KindResolverNotFound:     http.StatusNotFound,
	KindTextRecordNotFound:   http.StatusNotFound,
	KindRetrieveURIFailed:    http.StatusNotFound,
	KindURIParsingError:      http.StatusBadRequest,
}

// DefaultStatus returns the status code hint of the kind, 500 for unknown kinds.
func (k ErrorKind) DefaultStatus() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error carries a kind, a status hint and optionally the upstream status seen
// while talking to a collaborator (indexer, gateway).
type Error struct {
	Kind           ErrorKind
	Status         int
	Message        string
	InternalStatus int
	Err            error
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Status: kind.DefaultStatus(), Message: msg}
}

func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return NewError(kind, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// WithInternalStatus records the status reported by an upstream service.
func (e *Error) WithInternalStatus(status int) *Error {
	e.InternalStatus = status
	return e
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// StatusOf maps err to a status code; errors outside the taxonomy are 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		if e.Status != 0 {
			return e.Status
		}
		return e.Kind.DefaultStatus()
	}
	return http.StatusInternalServerError
}
