package http3

import (
	"fmt"

	"github.com/quic-go/quic-go"
)

// Code is a numeric HTTP/3 error code, sent as the QUIC application error
// code when resetting a stream or closing the connection.
type Code quic.ApplicationErrorCode

const (
	CodeNoError              Code = 0x100
	CodeGeneralProtocolError Code = 0x101
	CodeInternalError        Code = 0x102
	CodeStreamCreationError  Code = 0x103
	CodeClosedCriticalStream Code = 0x104
	CodeFrameUnexpected      Code = 0x105
	CodeFrameError           Code = 0x106
	CodeExcessiveLoad        Code = 0x107
	CodeIDError              Code = 0x108
	CodeSettingsError        Code = 0x109
	CodeMissingSettings      Code = 0x10a
	CodeRequestRejected      Code = 0x10b
	CodeRequestCancelled     Code = 0x10c
	CodeRequestIncomplete    Code = 0x10d
	CodeMessageError         Code = 0x10e
)

func (c Code) String() string {
	switch c {
	case CodeNoError:
		return "H3_NO_ERROR"
	case CodeGeneralProtocolError:
		return "H3_GENERAL_PROTOCOL_ERROR"
	case CodeInternalError:
		return "H3_INTERNAL_ERROR"
	case CodeStreamCreationError:
		return "H3_STREAM_CREATION_ERROR"
	case CodeClosedCriticalStream:
		return "H3_CLOSED_CRITICAL_STREAM"
	case CodeFrameUnexpected:
		return "H3_FRAME_UNEXPECTED"
	case CodeFrameError:
		return "H3_FRAME_ERROR"
	case CodeExcessiveLoad:
		return "H3_EXCESSIVE_LOAD"
	case CodeIDError:
		return "H3_ID_ERROR"
	case CodeSettingsError:
		return "H3_SETTINGS_ERROR"
	case CodeMissingSettings:
		return "H3_MISSING_SETTINGS"
	case CodeRequestRejected:
		return "H3_REQUEST_REJECTED"
	case CodeRequestCancelled:
		return "H3_REQUEST_CANCELLED"
	case CodeRequestIncomplete:
		return "H3_REQUEST_INCOMPLETE"
	case CodeMessageError:
		return "H3_MESSAGE_ERROR"
	default:
		return fmt.Sprintf("unknown H3 error code: %#x", uint64(c))
	}
}

// ApplicationErrorCode converts a Code to the quic-go type used when
// closing the connection.
func (c Code) ApplicationErrorCode() quic.ApplicationErrorCode {
	return quic.ApplicationErrorCode(c)
}

// StreamErrorCode converts a Code to the quic-go type used when
// resetting or stopping a single stream.
func (c Code) StreamErrorCode() quic.StreamErrorCode {
	return quic.StreamErrorCode(c)
}

// Kind classifies an Error as one of the four kinds from the error
// handling design: transport, protocol, header-too-big, internal.
type Kind int

const (
	KindTransport Kind = iota
	KindProtocol
	KindHeaderTooBig
	KindInternal
)

// Error is the only error type returned across the public API of this
// package. Which fields are meaningful depends on Kind.
type Error struct {
	Kind Kind

	// set when Kind == KindProtocol
	Code   Code
	Reason string

	// set when Kind == KindHeaderTooBig
	Actual uint64
	Limit  uint64

	// wrapped cause, set for KindTransport and KindInternal
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("http3: transport error: %s", e.Cause)
	case KindProtocol:
		if e.Reason != "" {
			return fmt.Sprintf("http3: protocol error %s: %s", e.Code, e.Reason)
		}
		return fmt.Sprintf("http3: protocol error %s", e.Code)
	case KindHeaderTooBig:
		return fmt.Sprintf("http3: header section too big: %d bytes (limit %d)", e.Actual, e.Limit)
	case KindInternal:
		return fmt.Sprintf("http3: internal error: %s", e.Cause)
	default:
		return "http3: unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrTransport wraps a failure surfaced by the QUIC transport collaborator.
func ErrTransport(err error) *Error {
	return &Error{Kind: KindTransport, Cause: err}
}

// ErrProtocol builds a protocol violation carrying one of the Code values.
func ErrProtocol(code Code, reason string) *Error {
	return &Error{Kind: KindProtocol, Code: code, Reason: reason}
}

// ErrHeaderTooBig reports a size-policy violation, inbound or outbound.
func ErrHeaderTooBig(actual, limit uint64) *Error {
	return &Error{Kind: KindHeaderTooBig, Actual: actual, Limit: limit}
}

// ErrInternal wraps a self-inflicted invariant violation, e.g. failure to
// serialize a well-formed value we built ourselves.
func ErrInternal(err error) *Error {
	return &Error{Kind: KindInternal, Cause: err}
}

// IsHeaderTooBig reports whether err is, or wraps, a header-too-big Error.
func IsHeaderTooBig(err error) bool {
	var e *Error
	return asError(err, &e) && e.Kind == KindHeaderTooBig
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// FrameTypeError is returned when an unexpected frame is read. Want is set
// to the desired frame type, while Type is set to the actual frame type.
type FrameTypeError struct {
	Want FrameType
	Type FrameType
}

func (err *FrameTypeError) Error() string {
	return fmt.Sprintf("unexpected frame type %s, expected %s", err.Type, err.Want)
}

var _ error = &FrameTypeError{}
