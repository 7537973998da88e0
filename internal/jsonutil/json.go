// Package jsonutil holds the JSON encoding shared by the group writers.
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder that leaves '<', '>' and '&' alone; group
// records carry no HTML. indent == "" writes compact output.
func NewEncoder(w io.Writer, indent string) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc
}

// EncodePretty writes v as one two-space indented document.
func EncodePretty(w io.Writer, v any) error {
	return NewEncoder(w, "  ").Encode(v)
}
