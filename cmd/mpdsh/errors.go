package main

import "fmt"

// Exit codes for CLI commands.
const (
	exitSuccess       = 0
	exitError         = 1
	exitConnectFailed = 2
	exitProtocol      = 3
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errConnectFailed(addr string, err error) *ExitError {
	return &ExitError{
		Code:    exitConnectFailed,
		Message: fmt.Sprintf("Cannot connect to MPD at %s: %v", addr, err),
	}
}

func errHandshake(err error) *ExitError {
	return &ExitError{
		Code:    exitProtocol,
		Message: fmt.Sprintf("MPD handshake failed: %v", err),
	}
}

func errAuth(err error) *ExitError {
	return &ExitError{
		Code:    exitProtocol,
		Message: fmt.Sprintf("MPD rejected the password: %v", err),
	}
}

func errConnectionLost() *ExitError {
	return &ExitError{
		Code:    exitConnectFailed,
		Message: "Connection to MPD was closed.",
	}
}

func errCommandFailed() *ExitError {
	return &ExitError{
		Code:    exitProtocol,
		Message: "",
	}
}
