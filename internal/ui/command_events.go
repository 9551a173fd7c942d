package ui

import (
	"go.uber.org/zap"

	"github.com/temirov/pending/internal/execshell"
)

// answerExitCode is how git's quiet comparisons say "differences found"; higher codes are git errors.
const answerExitCode = 1

// ConsoleCommandEventLogger renders command lifecycle events using a zap logger configured for human-readable output.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted implements execshell.CommandEventObserver. Exit code 1 is a probe answer and
// is logged at info level; other non-zero codes are warnings.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	switch result.ExitCode {
	case 0:
		eventLogger.logger.Info(eventLogger.formatter.BuildSuccessMessage(command, result))
	case answerExitCode:
		eventLogger.logger.Info(eventLogger.formatter.BuildFailureMessage(command, result))
	default:
		eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(command, result))
	}
}

// CommandExecutionFailed implements execshell.CommandEventObserver.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(command, failure))
}
