package anki

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoDataFound is returned when the service answers with a structurally
// valid but empty result for a call that requires data (e.g. notesInfo).
var ErrNoDataFound = errors.New("no data found for query")

// ServerError is an error string returned by AnkiConnect itself. The message
// is surfaced verbatim and never reinterpreted.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// TransportError is a network-level failure: connection refused, timeout, DNS,
// or a non-success HTTP status from the endpoint.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body does not match the expected
// result shape. It keeps the expected type name, the raw value received, and
// the underlying decode diagnostic so protocol drift can be debugged without
// reproducing the call.
type DecodeError struct {
	Expected string
	Raw      json.RawMessage
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response as %s: %v (raw: %s)", e.Expected, e.Err, e.Raw)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidIDError is returned when an identifier cannot be normalized into a
// Number.
type InvalidIDError struct {
	Raw string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid identifier: %q", e.Raw)
}

// ValidationError names the first required note field that was absent or
// empty when a builder was finalized.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing or empty", e.Field)
}

// MissingMediaError is returned when a media item has no data, url, or path
// to resolve bytes from.
type MissingMediaError struct {
	Filename string
}

func (e *MissingMediaError) Error() string {
	return fmt.Sprintf("media %q has no data, url, or path source", e.Filename)
}

// FileError is a local filesystem failure while validating or reading a
// path-sourced media item.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
