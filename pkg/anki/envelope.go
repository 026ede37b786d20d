package anki

import (
	"bytes"
	"encoding/json"
)

// request is the fixed outer structure wrapping every call to AnkiConnect.
// A nil params marshals as key omission, never as an explicit null.
type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// response is the fixed outer structure of every AnkiConnect reply. Result is
// kept raw so it can be sanitized before a strict typed decode; a non-nil
// Error means the call failed regardless of what Result contains.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// sanitizeResult removes empty-object placeholder elements that AnkiConnect
// occasionally emits inside otherwise well-typed result arrays. Non-array
// results, non-object elements, and non-empty objects pass through unchanged,
// order preserved. The rule is idempotent.
func sanitizeResult(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return raw
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return raw
	}
	kept := make([]json.RawMessage, 0, len(elems))
	for _, el := range elems {
		if isEmptyObject(el) {
			continue
		}
		kept = append(kept, el)
	}
	if len(kept) == len(elems) {
		return raw
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return raw
	}
	return out
}

func isEmptyObject(el json.RawMessage) bool {
	trimmed := bytes.TrimSpace(el)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return false
	}
	return len(obj) == 0
}
