// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"slices"
	"strings"
)

type (
	// ActionableError is a failure as shown to the user: the operation porter
	// was performing, the file or hook involved, what to try next and the
	// catalog guide that explains it.
	ActionableError struct {
		// Operation is a verb phrase such as "load configuration".
		Operation string
		// Resource names the config file, hook or module involved (optional).
		Resource string
		// Suggestions are printed as a bulleted list (optional).
		Suggestions []string
		// Cause is the underlying error (optional).
		Cause error
		// Issue links a catalog guide (optional).
		Issue Id
	}

	// ErrorContext builds an ActionableError incrementally:
	//
	//	return issue.NewErrorContext().
	//		WithOperation("load configuration").
	//		WithResource(path).
	//		WithIssue(issue.ConfigLoadFailedId).
	//		Wrap(err).
	//		BuildError()
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error returns "failed to <operation>: <resource>: <cause>", omitting the
// parts that are not set.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error for the terminal: the message, then one bullet per
// suggestion. verbose appends every error in the cause tree, depth first,
// numbered from the direct cause.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, s := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		for i, line := range causeChain(e.Cause) {
			fmt.Fprintf(&msg, "\n  %d. %s", i+1, line)
		}
	}

	return msg.String()
}

// CatalogIssue returns the linked guide, or nil.
func (e *ActionableError) CatalogIssue() *Issue {
	if e.Issue == 0 {
		return nil
	}
	return Get(e.Issue)
}

// WithOperation sets the operation, a verb phrase such as "resolve module".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource sets the file, hook or module involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends a suggestion.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, sug)
	return c
}

// WithIssue links the catalog guide for this kind of failure.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.Issue = id
	return c
}

// Wrap sets the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build returns the ActionableError, or nil when no operation was set. The
// builder can keep being used afterwards without affecting the result.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	ae.Suggestions = slices.Clone(c.err.Suggestions)
	return &ae
}

// BuildError is Build typed as error, so a missing operation yields a nil
// interface rather than a typed nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}

// causeChain lists the messages of err and everything it wraps, following
// both single and multi-error Unwrap methods.
func causeChain(err error) []string {
	var lines []string
	stack := []error{err}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		lines = append(lines, cur.Error())

		switch u := cur.(type) {
		case interface{ Unwrap() error }:
			stack = append(stack, u.Unwrap())
		case interface{ Unwrap() []error }:
			wrapped := u.Unwrap()
			for i := len(wrapped) - 1; i >= 0; i-- {
				stack = append(stack, wrapped[i])
			}
		}
	}
	return lines
}
