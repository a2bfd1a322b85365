package errors

// ExitError carries a process exit code for an error.
type ExitError struct {
	// Code is the exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
