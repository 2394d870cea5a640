// Package client is the HTTP transport for the neatdog backend.
//
// # Overview
//
// A Client turns one logical call (method, path, optional body) into one
// HTTP request against a fixed base URL, and classifies the outcome:
//
//  1. The path is resolved against the base URL (ErrInvalidEndpoint).
//  2. Content-Type is always application/json; Authorization carries
//     "Bearer <access token>" only when the CredentialSource reports one.
//     The credential is read once per call, at dispatch time.
//  3. The body, if any, is encoded with package codec.
//  4. Dispatch failures become *TransportError and are never retried.
//  5. An absent or unreadable response becomes ErrInvalidResponse.
//  6. Non-2xx statuses become *StatusError, with the server's "detail"
//     message when the error body carries one.
//  7. Successful bodies are decoded with package codec; failures become
//     *DecodeError.
//
// The client never re-authenticates on its own. Recovering from an expired
// session is the caller's job (see package session).
//
// # Error Handling
//
// Callers branch with errors.Is and errors.As: ErrUnauthorized, ErrForbidden
// and ErrNotFound match *StatusError values for 401, 403 and 404, and
// ErrUnavailable matches *TransportError. StatusCode extracts the code
// directly. SentWith tells which credential a rejected request carried.
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use. Every call takes a context.Context.
package client
