package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse marks a target time string that could not be interpreted in the
	// configured time zone. No frames are produced after a parse failure.
	ErrParse = errors.New("parse error")
	// ErrSequence marks encoder API misuse: adding a frame before Start or
	// after Finish. It indicates an orchestration bug, not a recoverable state.
	ErrSequence = errors.New("sequence error")
	// ErrIO marks output directory or file failures during streaming.
	ErrIO = errors.New("io error")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a session error to the process exit status the CLI reports.
// Parse failures are caller mistakes (2), sequencing bugs are internal (3),
// everything else is a generic failure (1).
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrParse):
		return 2
	case errors.Is(err, ErrSequence):
		return 3
	default:
		return 1
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "session failure"
	}
	return strings.Join(parts, ": ")
}
