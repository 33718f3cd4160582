package tool

import "fmt"

// ErrAlreadyRegistered is returned when registering a tool with a duplicate name.
type ErrAlreadyRegistered struct {
	Name string
}

// Error returns a formatted error message including the duplicate tool name.
func (e *ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("tool: already registered: %s", e.Name)
}

// ErrMissingArg is returned by Build when a required argument is absent.
type ErrMissingArg struct {
	Tool string
	Arg  string
}

// Error returns a formatted error message naming the tool and argument.
func (e *ErrMissingArg) Error() string {
	return fmt.Sprintf("tool: %s: missing required argument %q", e.Tool, e.Arg)
}

// ErrBadArg is returned by Build when an argument has the wrong type.
type ErrBadArg struct {
	Tool string
	Arg  string
	Want string
}

// Error returns a formatted error message naming the tool, argument, and
// expected type.
func (e *ErrBadArg) Error() string {
	return fmt.Sprintf("tool: %s: argument %q must be a %s", e.Tool, e.Arg, e.Want)
}
