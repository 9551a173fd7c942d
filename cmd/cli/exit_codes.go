package cli

import (
	"errors"

	"github.com/temirov/pending/internal/execshell"
)

// Process exit codes.
const (
	ExitCodeSuccess      = 0
	ExitCodeScanFailure  = 1
	ExitCodeUsage        = 2
	ExitCodeSpawnFailure = 3
	ExitCodeWaitFailure  = 4
)

// UsageError marks invalid invocations: unknown flags, bad flag values, and unusable
// configuration or logging settings.
type UsageError struct {
	Cause error
}

func (failure UsageError) Error() string {
	if failure.Cause == nil {
		return "invalid usage"
	}
	return failure.Cause.Error()
}

func (failure UsageError) Unwrap() error {
	return failure.Cause
}

// ExitCode maps an execution error to the process exit status. Stat and listing failures,
// and anything unclassified, map to ExitCodeScanFailure.
func ExitCode(executionError error) int {
	if executionError == nil {
		return ExitCodeSuccess
	}

	var usageFailure UsageError
	if errors.As(executionError, &usageFailure) {
		return ExitCodeUsage
	}

	var startFailure execshell.ProcessStartError
	if errors.As(executionError, &startFailure) {
		return ExitCodeSpawnFailure
	}

	var waitFailure execshell.ProcessWaitError
	if errors.As(executionError, &waitFailure) {
		return ExitCodeWaitFailure
	}

	return ExitCodeScanFailure
}
