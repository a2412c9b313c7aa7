// Package cmd provides CLI command implementations.
package cmd

// Exit codes surfaced to the calling pipeline.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates the snapshot failed parsing or validation.
	ExitValidationError = 2

	// ExitConnectivityError indicates GitHub or bonfire could not be reached.
	ExitConnectivityError = 3

	// ExitMissingContext indicates required deployment context (the SNAPSHOT
	// value) is absent.
	ExitMissingContext = 4

	// ExitGateNotSatisfied indicates a required PR label is not present.
	ExitGateNotSatisfied = 5
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
	case ExitConnectivityError:
		return "Connectivity Error"
	case ExitMissingContext:
		return "Missing Context"
	case ExitGateNotSatisfied:
		return "Gate Not Satisfied"
	default:
		return "Unknown"
	}
}
