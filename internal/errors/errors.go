package gerr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error carries a gRPC status code next to the wrapped cause so that
// transports can map it without knowing where it came from.
type Error struct {
	Code codes.Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GRPCStatus lets status.Code and status.Convert recognise the error.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Error())
}

var (
	ErrInvalidTimeUnit   = InvalidArgument("invalid time unit")
	ErrInvalidReportKind = InvalidArgument("invalid report kind")
	ErrInvalidDateRange  = InvalidArgument("invalid date range")
)

// InvalidArgument is returned for unrecognised selectors and malformed input.
func InvalidArgument(format string, a ...any) *Error {
	return &Error{Code: codes.InvalidArgument, Msg: fmt.Sprintf(format, a...)}
}

// InvalidArgumentf wraps a sentinel InvalidArgument error with details, keeping errors.Is working.
func InvalidArgumentf(sentinel *Error, format string, a ...any) *Error {
	return &Error{Code: codes.InvalidArgument, Msg: fmt.Sprintf(format, a...), Err: sentinel}
}

// StoreUnavailable wraps a failed store query.
func StoreUnavailable(op string, err error) *Error {
	return &Error{Code: codes.Unavailable, Msg: op, Err: err}
}

func IsInvalidArgument(err error) bool {
	return codeOf(err) == codes.InvalidArgument
}

func IsStoreUnavailable(err error) bool {
	return codeOf(err) == codes.Unavailable
}

// Code returns the status code of err, codes.OK for nil and codes.Unknown for
// errors that carry no code.
func Code(err error) codes.Code {
	return codeOf(err)
}

func codeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return status.Code(err)
}
