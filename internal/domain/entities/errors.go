package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a GatewayError for callers deciding how to recover.
type ErrorKind string

const (
	// ErrorKindInvalidState means the remote payment is already final.
	ErrorKindInvalidState ErrorKind = "invalid_state"
	// ErrorKindProvider means the gateway answered unexpectedly or was unreachable.
	ErrorKindProvider ErrorKind = "provider_error"
	// ErrorKindModule is a local precondition violation (programmer error).
	ErrorKindModule ErrorKind = "internal_module_error"
	// ErrorKindRequest is a malformed inbound callback.
	ErrorKindRequest ErrorKind = "request_error"
)

// Kind sentinels, usable with errors.Is on any *GatewayError.
var (
	ErrInvalidState = errors.New(string(ErrorKindInvalidState))
	ErrProvider     = errors.New(string(ErrorKindProvider))
	ErrModule       = errors.New(string(ErrorKindModule))
	ErrRequest      = errors.New(string(ErrorKindRequest))
)

var (
	ErrInsufficientArguments      = errors.New("insufficient arguments")
	ErrMissingAcquirer            = errors.New("no acquirer id provided")
	ErrMissingPaymentID           = errors.New("payment id not provided")
	ErrMissingAuthorizationHeader = errors.New("authorization header missing")
)

// GatewayError carries the diagnostics of a failed gateway interaction.
//
// StatusCode, RequestURL, RequestBody and ResponseBody are only set when the
// failure came from an HTTP exchange.
type GatewayError struct {
	Kind         ErrorKind
	Message      string
	StatusCode   int
	RequestURL   string
	RequestBody  []byte
	ResponseBody string
	Err          error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status=%d url=%s)", msg, e.StatusCode, e.RequestURL)
	}
	switch {
	case msg == "" && e.Err != nil:
		return e.Err.Error()
	case msg == "":
		return string(e.Kind)
	case e.Err != nil:
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *GatewayError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorKindInvalidState:
		return ErrInvalidState
	case ErrorKindProvider:
		return ErrProvider
	case ErrorKindRequest:
		return ErrRequest
	default:
		return ErrModule
	}
}

func NewGatewayError(kind ErrorKind, message string, cause error) *GatewayError {
	return &GatewayError{Kind: kind, Message: message, Err: cause}
}

// NewModuleError wraps a local precondition failure.
func NewModuleError(cause error) *GatewayError {
	return &GatewayError{Kind: ErrorKindModule, Err: cause}
}

// KindOf returns the kind of err, or "" when err is not a *GatewayError.
func KindOf(err error) ErrorKind {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return ""
}
