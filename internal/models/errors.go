package models

import "fmt"

// ErrorKind classifies gateway failures.
type ErrorKind int

const (
	// KindNetwork covers transport and connection failures.
	KindNetwork ErrorKind = iota
	// KindAPI covers non-2xx responses from the remote API.
	KindAPI
	// KindParse covers responses that did not match the expected shape.
	KindParse
	// KindConfig covers missing or invalid local configuration, such as a
	// missing API key.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAPI:
		return "api"
	case KindParse:
		return "parse"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is the typed failure surfaced by the remote query gateway.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("Network error: %s", e.Detail)
	case KindAPI:
		return fmt.Sprintf("API error: %s", e.Detail)
	case KindParse:
		return fmt.Sprintf("Parse error: %s", e.Detail)
	case KindConfig:
		return fmt.Sprintf("Configuration error: %s", e.Detail)
	default:
		return e.Detail
	}
}

// NewError builds a typed gateway error.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a gateway error, or KindNetwork for untyped
// errors (the conservative default for transport-level surprises).
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindNetwork
}
