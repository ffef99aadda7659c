package models

import (
	"fmt"
	"strings"
)

/**
 * ErrorKind tags the category of a validation failure.
 */
type ErrorKind string

const (
	ErrConflict       ErrorKind = "conflict"
	ErrDependency     ErrorKind = "dependency"
	ErrCycle          ErrorKind = "cycle"
	ErrUnknownProfile ErrorKind = "unknown_profile"
	ErrType           ErrorKind = "type"
	ErrBounds         ErrorKind = "bounds"
)

/**
 * ValidationError is one structured validation failure.
 * @property {ErrorKind} kind - Error category tag
 * @property {[]string} keys - Offending config keys or service names
 * @property {string} message - Human-readable explanation
 * @description
 * - Checks return these as values, never abort mid-pass; the top-level
 *   validation entry point accumulates every failure before reporting
 */
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Keys    []string  `json:"keys,omitempty"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	if len(e.Keys) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Kind, strings.Join(e.Keys, ", "), e.Message)
}

/**
 * ValidationErrors is the accumulated outcome of one validation pass.
 */
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "no validation errors"
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Sprintf("%d validation error(s):\n  %s", len(errs), strings.Join(lines, "\n  "))
}

/**
 * OrNil converts the list into a plain error, nil when empty, so callers
 * can use the usual err != nil idiom.
 */
func (errs ValidationErrors) OrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
