package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	commandStartedLogMessageConstant   = "executing command"
	commandCompletedLogMessageConstant = "command completed"
	commandFailedLogMessageConstant    = "command could not be executed"
	logFieldCommandConstant            = "command"
	logFieldArgumentsConstant          = "arguments"
	logFieldWorkingDirectoryConstant   = "working_directory"
	logFieldExitCodeConstant           = "exit_code"
	logFieldOutputEmptyConstant        = "output_empty"
	logFieldStandardErrorConstant      = "stderr"
	logFieldDescriptionConstant        = "description"
)

// ShellExecutor runs external commands through a CommandRunner, logging every invocation.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	observer         CommandEventObserver
	messageFormatter CommandMessageFormatter
}

// NewShellExecutor constructs a ShellExecutor that reports no lifecycle events.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithObserver(logger, runner, nil)
}

// NewShellExecutorWithObserver constructs a ShellExecutor that notifies observer about each command.
func NewShellExecutorWithObserver(logger *zap.Logger, runner CommandRunner, observer CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if observer == nil {
		observer = noopCommandEventObserver{}
	}
	return &ShellExecutor{
		logger:           logger,
		runner:           runner,
		observer:         observer,
		messageFormatter: CommandMessageFormatter{},
	}, nil
}

// ExecuteGit runs git with the supplied details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

// Execute runs the command. A non-zero exit is returned as CommandFailedError together with
// the captured result; a failure to run the process at all is returned as CommandExecutionError.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	commandFields := []zap.Field{
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	}

	executor.logger.Debug(commandStartedLogMessageConstant, append(commandFields, zap.String(logFieldDescriptionConstant, executor.messageFormatter.BuildStartedMessage(command)))...)
	executor.observer.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Debug(commandFailedLogMessageConstant, append(commandFields, zap.Error(runError))...)
		executor.observer.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.logger.Debug(
		commandCompletedLogMessageConstant,
		append(
			commandFields,
			zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
			zap.Bool(logFieldOutputEmptyConstant, executionResult.OutputEmpty()),
			zap.String(logFieldStandardErrorConstant, executionResult.StandardError),
		)...,
	)
	executor.observer.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	return executionResult, nil
}
