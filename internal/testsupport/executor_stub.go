package testsupport

import (
	"context"
	"strings"

	"github.com/temirov/pending/internal/execshell"
)

const argumentKeySeparatorConstant = " "

// GitCommandExecutorStub answers git invocations from a table keyed by the joined argument list.
// Unlisted invocations succeed with empty output. Non-zero exit codes are surfaced the same way
// ShellExecutor surfaces them, as execshell.CommandFailedError.
type GitCommandExecutorStub struct {
	Responses           map[string]execshell.ExecutionResult
	Failures            map[string]error
	ExecutedGitCommands []execshell.CommandDetails
}

// ExecuteGit records the invocation and returns the scripted response.
func (executor *GitCommandExecutorStub) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.ExecutedGitCommands = append(executor.ExecutedGitCommands, details)
	argumentKey := strings.Join(details.Arguments, argumentKeySeparatorConstant)

	if failure, exists := executor.Failures[argumentKey]; exists {
		return execshell.ExecutionResult{}, failure
	}

	response := executor.Responses[argumentKey]
	if response.ExitCode != 0 {
		command := execshell.ShellCommand{Name: execshell.CommandGit, Details: details}
		return execshell.ExecutionResult{}, execshell.CommandFailedError{Command: command, Result: response}
	}
	return response, nil
}

// ExecutedArguments returns the joined argument lists in invocation order.
func (executor *GitCommandExecutorStub) ExecutedArguments() []string {
	executedArguments := make([]string, 0, len(executor.ExecutedGitCommands))
	for _, details := range executor.ExecutedGitCommands {
		executedArguments = append(executedArguments, strings.Join(details.Arguments, argumentKeySeparatorConstant))
	}
	return executedArguments
}
