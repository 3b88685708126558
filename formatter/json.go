package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes v indented, with object keys in sorted order and without
// HTML escaping so SVG markup stays readable.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// BuildJSON serializes v like WriteJSON
func BuildJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
