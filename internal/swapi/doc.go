// Package swapi is a minimal client for the Star Wars API (SWAPI) people
// endpoint.
//
// The client issues exactly one GET per call and returns typed errors so that
// callers can distinguish HTTP status failures (*StatusError) from transport
// failures (ErrNetwork) and malformed payloads (ErrDecode). It never retries.
package swapi
