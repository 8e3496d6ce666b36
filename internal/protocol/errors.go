package protocol

import (
	"errors"
	"fmt"
)

// AckCode is the numeric error code carried by an ACK line.
type AckCode int

// Error codes reported by the daemon.
const (
	AckNotList       AckCode = 1
	AckArg           AckCode = 2
	AckPassword      AckCode = 3
	AckPermission    AckCode = 4
	AckUnknown       AckCode = 5
	AckNoExist       AckCode = 50
	AckPlaylistMax   AckCode = 51
	AckSystem        AckCode = 52
	AckPlaylistLoad  AckCode = 53
	AckUpdateAlready AckCode = 54
	AckPlayerSync    AckCode = 55
	AckExist         AckCode = 56
)

// AckTransport marks a failure produced locally because the session is gone.
// The daemon never sends negative codes.
const AckTransport AckCode = -2

// AckError is the failed outcome of one command.
type AckError struct {
	Code    AckCode
	Index   int    // position of the failing command in a command list
	Command string // offending command, empty if not reported
	Message string
}

func (e *AckError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("code:%d", e.Code)
	}
	return fmt.Sprintf("code:%d msg:%s", e.Code, e.Message)
}

// IsAck reports whether err is an AckError with the given code.
func IsAck(err error, code AckCode) bool {
	var ae *AckError
	return errors.As(err, &ae) && ae.Code == code
}

// IsTransport reports whether err is the synthetic failure returned when the
// session worker is no longer running.
func IsTransport(err error) bool {
	return IsAck(err, AckTransport)
}

// NewTransportError returns the synthetic failure for a closed session.
func NewTransportError() *AckError {
	return &AckError{Code: AckTransport}
}

// ProtocolError indicates the daemon sent something that violates the wire
// format (unparsable ACK, bad binary length, bad greeting).
type ProtocolError struct {
	Line string
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation in %q: %v", e.Line, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// IsProtocolError reports whether err is a wire format violation.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}
