// Package errors provides structured error handling for the atlas build.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeMissingInput Code = "MISSING_INPUT"
	CodeParseFailed  Code = "PARSE_FAILED"
	CodeFieldShape   Code = "FIELD_SHAPE"

	// Cross-reference errors
	CodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"
	CodeDuplicateClaim      Code = "DUPLICATE_CLAIM"

	// Storage errors
	CodeStoreFailed Code = "STORE_FAILED"
)

var operatorMessages = map[Code]string{
	CodeMissingInput:        "required game data is missing: {{.path}}",
	CodeParseFailed:         "could not read {{.path}}",
	CodeFieldShape:          "field {{.field}} in {{.path}} has the wrong shape",
	CodeUnresolvedReference: "{{.level}} {{.parent}} references unknown {{.child}}",
	CodeDuplicateClaim:      "{{.level}} {{.child}} is claimed by both {{.owner}} and {{.parent}}",
	CodeStoreFailed:         "could not write the content store {{.path}}",
}

// ExitCode maps domain codes to process exit codes.
func (c Code) ExitCode() int {
	switch c {
	// Inputs are absent or unusable
	case CodeMissingInput, CodeParseFailed, CodeFieldShape:
		return 2

	// Data is inconsistent under strict assembly
	case CodeUnresolvedReference, CodeDuplicateClaim:
		return 3

	case CodeStoreFailed:
		return 4

	default:
		return 1
	}
}

// Fatal reports whether an error with this code always aborts the batch.
// Other codes are recoverable and only abort when strict assembly asks for it.
func (c Code) Fatal() bool {
	return c == CodeMissingInput || c == CodeStoreFailed
}
