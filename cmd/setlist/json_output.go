package main

import (
	"encoding/json"
	"io"
)

// writeJSON writes v as indented JSON followed by a newline, for
// commands running under --json.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
