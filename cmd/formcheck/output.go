package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	apperrors "orgdesk/pkg/errors"
)

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// writeError prints the {code, message, details} body of e.
func writeError(w io.Writer, e *apperrors.AppError, pretty bool) error {
	body := e.ToJSON()
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			return err
		}
		body = buf.Bytes()
	}
	_, err := fmt.Fprintf(w, "%s\n", body)
	return err
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

// verdict prints "valid" or "invalid"; invalid input fails the command.
func verdict(w io.Writer, ok bool) error {
	if !ok {
		if err := writeLine(w, "invalid"); err != nil {
			return err
		}
		return errRejected
	}
	return writeLine(w, "valid")
}
