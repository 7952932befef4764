package problem

import "fmt"

// ParseError reports a problem file that could not be decoded.
type ParseError struct {
	Path string // empty when parsing raw bytes
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "problem: parse: " + e.Err.Error()
	}
	return fmt.Sprintf("problem: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports one invalid field of a problem.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("problem: %s: %s", e.Field, e.Msg)
}
