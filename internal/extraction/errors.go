// Package extraction decodes uploaded resume documents into plain text.
// It sits strictly outside the parsing core: the parser receives only the
// final string this package produces.
package extraction

import "fmt"

// UnsupportedFormatError indicates the file extension is not one of the
// supported resume formats.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q (supported: .pdf, .docx, .doc, .txt, .html)", e.Extension)
}

// DecodeError represents a failure to decode a document of a supported format.
type DecodeError struct {
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
