// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrSchemaViolation is wrapped by every ValidationError.
	ErrSchemaViolation = errors.New("CUE validation failed")
	// ErrFileTooLarge is returned by CheckFileSize.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// Violation is one CUE error, located by the path of the offending field.
	Violation struct {
		// Path is empty for errors that are not tied to a field, such as syntax errors.
		Path    CUEPath
		Message string
	}

	// ValidationError collects every violation CUE reported for one file.
	ValidationError struct {
		FilePath   string
		Violations []Violation
	}
)

// String renders "path: message", or the bare message without a path.
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return string(v.Path) + ": " + v.Message
}

// Error reports a single violation on one line and several as an indented list.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return e.FilePath + ": " + e.Violations[0].String()
	}
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, v.String())
	}
	return fmt.Sprintf("%s: %d violations:\n  %s", e.FilePath, len(e.Violations), strings.Join(lines, "\n  "))
}

// Unwrap returns ErrSchemaViolation.
func (e *ValidationError) Unwrap() error {
	return ErrSchemaViolation
}

// Paths returns the distinct field paths that failed, in report order.
func (e *ValidationError) Paths() []CUEPath {
	var paths []CUEPath
	for _, v := range e.Violations {
		if v.Path.Validate() == nil && !slices.Contains(paths, v.Path) {
			paths = append(paths, v.Path)
		}
	}
	return paths
}

// FormatError turns a CUE error into a *ValidationError whose violations are
// located with JSON-style paths:
//
//	config.cue: hooks[1].root: invalid value "a.b" (out of bound =~"^[^.\\s]+$")
//
// Errors that carry no CUE detail are wrapped with the file path instead.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	var cueErr cueerrors.Error
	if !errors.As(err, &cueErr) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	ve := &ValidationError{FilePath: filePath}
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		v := Violation{
			Path:    CUEPath(formatPath(cueerrors.Path(e))),
			Message: fmt.Sprintf(format, args...),
		}
		if !slices.Contains(ve.Violations, v) {
			ve.Violations = append(ve.Violations, v)
		}
	}
	return ve
}

// formatPath joins CUE path selectors, writing numeric selectors as list
// indexes: ["hooks", "0", "root"] becomes "hooks[0].root". Leading
// definitions are dropped, so "#Config.hooks" reads as "hooks".
func formatPath(path []string) string {
	for len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	var b strings.Builder
	for i, sel := range path {
		switch {
		case i > 0 && isIndex(sel):
			b.WriteString("[" + sel + "]")
		case i > 0:
			b.WriteString("." + sel)
		default:
			b.WriteString(sel)
		}
	}
	return b.String()
}

func isIndex(sel string) bool {
	return sel != "" && strings.Trim(sel, "0123456789") == ""
}

// CheckFileSize rejects data larger than maxSize with ErrFileTooLarge.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: %w: %d bytes exceeds the %d byte limit", filename, ErrFileTooLarge, size, maxSize)
	}
	return nil
}
