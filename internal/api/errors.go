package api

import "fmt"

// Kind classifies a client failure. Every operation fails with exactly
// one kind; callers never need to string-match messages.
type Kind int

const (
	// KindInvalidBaseURL - the configured server URL cannot be resolved.
	KindInvalidBaseURL Kind = iota + 1
	// KindNotConnected - an authenticated call was issued without a token.
	KindNotConnected
	// KindInvalidResponse - the transport failed or returned a non-HTTP response.
	KindInvalidResponse
	// KindServer - the server reported a failure, by envelope or status code.
	KindServer
)

// Error is the single error type surfaced by the client.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport or decode error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on kind, so errors.Is(err, ErrNotConnected) works regardless
// of the message a particular provider produced.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is matching.
var (
	ErrInvalidBaseURL  = &Error{Kind: KindInvalidBaseURL, Message: "server URL is invalid"}
	ErrNotConnected    = &Error{Kind: KindNotConnected, Message: "not connected to a budgeting server"}
	ErrInvalidResponse = &Error{Kind: KindInvalidResponse, Message: "unexpected response from the server"}
)

func notConnected(p Provider) *Error {
	if p.DisplayName == "" {
		return ErrNotConnected
	}
	return &Error{Kind: KindNotConnected, Message: fmt.Sprintf("connect to your %s server first", p.DisplayName)}
}

func invalidResponse(cause error) *Error {
	return &Error{Kind: KindInvalidResponse, Message: ErrInvalidResponse.Message, cause: cause}
}

func serverError(message string) *Error {
	return &Error{Kind: KindServer, Message: message}
}
