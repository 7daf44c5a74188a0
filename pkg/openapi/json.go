package openapi

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serializes a specification document with stable two-space
// indentation so generated files diff cleanly.
func MarshalJSON(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(spec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
