// Package anki provides a client for the AnkiConnect HTTP API.
//
// AnkiConnect is a local automation service that manages an Anki flashcard
// collection. Every call is a JSON envelope of an action name, a protocol
// version, and action-specific parameters; replies carry either a result
// payload or an error string. Media attached to notes is resolved into bytes
// client-side (inline data, remote URL, or local file) before transmission.
package anki
