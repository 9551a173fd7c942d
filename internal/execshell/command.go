package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	commandNameGitConstant                    = "git"
	commandFailedErrorTemplateConstant        = "%s exited with code %d"
	commandExecutionErrorTemplateConstant     = "%s could not be executed: %v"
	processStartErrorTemplateConstant         = "failed to start process: %v"
	processWaitErrorTemplateConstant          = "failed to wait for process: %v"
	loggerNotConfiguredMessageConstant        = "shell executor logger not configured"
	commandRunnerNotConfiguredMessageConstant = "shell executor command runner not configured"
)

// CommandName identifies an executable invoked by the shell executor.
type CommandName string

// CommandGit invokes the git command-line client.
const CommandGit CommandName = CommandName(commandNameGitConstant)

// CommandDetails describes the arguments and process environment of a single invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand couples an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a finished process.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// OutputEmpty reports whether the process wrote nothing to standard output.
func (result ExecutionResult) OutputEmpty() bool {
	return len(result.StandardOutput) == 0
}

// CommandRunner runs a command to completion and captures its output.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

var (
	// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
)

// CommandFailedError reports a process that ran but exited with a non-zero code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

func (failure CommandFailedError) Error() string {
	return fmt.Sprintf(commandFailedErrorTemplateConstant, describeCommand(failure.Command), failure.Result.ExitCode)
}

// CommandExecutionError reports a process that could not be run or observed to completion.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, describeCommand(failure.Command), failure.Cause)
}

func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

// ProcessStartError reports that the operating system refused to spawn the process.
type ProcessStartError struct {
	Command ShellCommand
	Cause   error
}

func (failure ProcessStartError) Error() string {
	return fmt.Sprintf(processStartErrorTemplateConstant, failure.Cause)
}

func (failure ProcessStartError) Unwrap() error {
	return failure.Cause
}

// ProcessWaitError reports that a spawned process could not be waited on.
type ProcessWaitError struct {
	Command ShellCommand
	Cause   error
}

func (failure ProcessWaitError) Error() string {
	return fmt.Sprintf(processWaitErrorTemplateConstant, failure.Cause)
}

func (failure ProcessWaitError) Unwrap() error {
	return failure.Cause
}

func describeCommand(command ShellCommand) string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
}
