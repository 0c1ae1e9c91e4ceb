package moto

import (
	"errors"
	"fmt"
)

// Sentinels for the failure taxonomy. Client errors wrap exactly one of
// them, or a *StatusError.
var (
	ErrTransport = errors.New("transport failure")
	ErrParse     = errors.New("parse failure")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// ErrorKind groups client errors for logging.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTransport
	KindResponse
	KindParse
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransport:
		return "transport"
	case KindResponse:
		return "response"
	case KindParse:
		return "parse"
	default:
		return "other"
	}
}

// Kind classifies err.
func Kind(err error) ErrorKind {
	var statusErr *StatusError
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &statusErr):
		return KindResponse
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrTransport):
		return KindTransport
	default:
		return KindOther
	}
}
