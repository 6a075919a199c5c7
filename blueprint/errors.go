package blueprint

import "fmt"

// Error reports a blueprint that could not be loaded or mapped: a missing or
// unreadable file, a syntax error, or required workflow fields absent from
// the document.
type Error struct {
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("blueprint %s: %s: %v", e.Path, e.Msg, e.Err)
	case e.Path != "":
		return fmt.Sprintf("blueprint %s: %s", e.Path, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("blueprint: %s: %v", e.Msg, e.Err)
	default:
		return fmt.Sprintf("blueprint: %s", e.Msg)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
