package helpers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

var jsonOptions = &pretty.Options{Width: 80, Indent: "  "}

// FormatJSON encodes v as indented JSON ending in a newline, with ANSI
// colours when color is set.
func FormatJSON(v any, color bool) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	out := pretty.PrettyOptions(raw, jsonOptions)
	if color {
		out = pretty.Color(out, nil)
	}
	return out, nil
}

// WriteJSON writes v to w using FormatJSON
func WriteJSON(w io.Writer, v any, color bool) error {
	out, err := FormatJSON(v, color)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
