// Package errors provides structured error codes for locale file failures.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeIO reports a filesystem failure while reading, listing or writing
	// a locale file.
	CodeIO Code = "IO_ERROR"

	// CodeParse reports locale file content that is not a JSON object.
	CodeParse Code = "PARSE_ERROR"

	// CodeOutOfSync reports locale files that a check run would rewrite.
	CodeOutOfSync Code = "OUT_OF_SYNC"
)

// Label returns a short human name for the code.
func (c Code) Label() string {
	switch c {
	case CodeIO:
		return "io error"
	case CodeParse:
		return "parse error"
	case CodeOutOfSync:
		return "out of sync"
	default:
		return "unknown error"
	}
}
