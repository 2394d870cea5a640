package client

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

var (
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	ErrInvalidResponse = errors.New("invalid response from server")

	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// StatusError is a response with a status outside 200–299.
type StatusError struct {
	Code int
	// Detail is the server's "detail" message; meaningful only when HasDetail.
	Detail    string
	HasDetail bool

	// sentWith is the access token the request carried, empty when none.
	sentWith string
}

func (e *StatusError) Error() string {
	if e.HasDetail {
		return fmt.Sprintf("HTTP %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("HTTP error %d", e.Code)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

// TransportError wraps a failure to exchange a request with the server.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "network error: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrUnavailable }

// DecodeError is a 2xx response whose body could not be decoded.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response of %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError is a request body that could not be encoded.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "failed to encode request: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

// StatusCode reports the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

// SentWith reports whether err is a *StatusError for a request that carried
// tok's access token.
func SentWith(err error, tok *oauth2.Token) bool {
	var se *StatusError
	if tok == nil || tok.AccessToken == "" || !errors.As(err, &se) {
		return false
	}
	return se.sentWith == tok.AccessToken
}
