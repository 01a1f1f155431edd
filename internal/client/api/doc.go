// Package api contains the HTTP core every outbound ManageMyMoney call
// goes through.
//
// # Overview
//
// The package provides:
//  1. A Client with verb-based operations (Get, Post, Put, Delete) that
//     builds requests against a configured base URL, attaches the stored
//     bearer token when one is present, tags each request with an
//     X-Request-Id, and decodes the standard {success, message, data,
//     errors} response envelope.
//  2. Centralized authorization-failure escalation: an HTTP 401 invokes the
//     registered UnauthorizedHandler (or clears the stored token directly
//     when none is registered) and is still returned to the caller.
//
// # Error Handling
//
// Failures surface as a small taxonomy callers can match with errors.Is /
// errors.As: ErrUnavailable (no response received), *StatusError (response
// with a failure status or an unsuccessful envelope; 401s also match
// ErrUnauthorized), and *DecodeError (malformed body).
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use. Calls race independently; nothing is
// queued or serialized, so concurrent 401s may invoke the handler more than
// once. All operations take a context.Context and honor cancellation; no
// retry or timeout policy is applied here.
package api
