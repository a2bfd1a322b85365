package cmd

// Exit codes returned by the bundler CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid configuration or manifest.
	ExitValidationError = 2

	// ExitNotFound indicates an unknown bundle route or a missing manifest.
	ExitNotFound = 3

	// ExitSourceError indicates a file to fingerprint could not be read.
	ExitSourceError = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitSourceError:
		return "Source Unreadable"
	default:
		return "Unknown"
	}
}
