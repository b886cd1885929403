package forge

import (
	"fmt"
	"sort"
	"strings"
)

// InputIOError wraps a failure reading a template, context, or existing
// output file (§7).
type InputIOError struct {
	Path string
	Err  error
}

func (e *InputIOError) Error() string { return fmt.Sprintf("reading %s: %v", e.Path, e.Err) }
func (e *InputIOError) Unwrap() error { return e.Err }

// ContextFormatError reports a context file that isn't valid JSON, or that
// parses but isn't a top-level JSON object (§6, §7).
type ContextFormatError struct {
	Path string
	Err  error
}

func (e *ContextFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("context file %s is not valid JSON: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("context file %s must contain a JSON object at the top level", e.Path)
}

func (e *ContextFormatError) Unwrap() error { return e.Err }

// TemplateError wraps a template parse or render failure (§7).
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string { return fmt.Sprintf("template %s: %v", e.Path, e.Err) }
func (e *TemplateError) Unwrap() error { return e.Err }

// OutputIOError wraps a failure writing the generated result (§7).
type OutputIOError struct {
	Path string
	Err  error
}

func (e *OutputIOError) Error() string { return fmt.Sprintf("writing %s: %v", e.Path, e.Err) }
func (e *OutputIOError) Unwrap() error { return e.Err }

// MultiError collects several errors raised together — forge uses it to
// promote a non-empty conflict list into a single terminal error under
// FailOnConflict.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	lines := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		lines = append(lines, fmt.Sprintf(" - %s", err))
	}
	sort.Strings(lines)
	return fmt.Sprintf("%d conflict(s) detected:\n%s", len(e.Errors), strings.Join(lines, "\n"))
}

func (e *MultiError) Count() int { return len(e.Errors) }

func (e *MultiError) Append(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}
