package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	lineSeparatorConstant                   = "\n"
	flagPrefixConstant                      = "-"
)

const (
	gitDiffIndexSubcommandNameConstant   = "diff-index"
	gitDiffFilesSubcommandNameConstant   = "diff-files"
	gitLSFilesSubcommandNameConstant     = "ls-files"
	gitSymbolicRefSubcommandNameConstant = "symbolic-ref"
	gitRevParseSubcommandNameConstant    = "rev-parse"
	gitForEachRefSubcommandNameConstant  = "for-each-ref"
)

const (
	gitDiffIndexStartTemplateConstant              = "Comparing staged changes with HEAD in %s"
	gitDiffIndexSuccessTemplateConstant            = "No staged changes in %s"
	gitDiffIndexFailureTemplateConstant            = "Staged changes differ from HEAD in %s (exit code %d%s)"
	gitDiffIndexExecutionFailureTemplateConstant   = "Unable to compare staged changes in %s: %s"
	gitDiffFilesStartTemplateConstant              = "Comparing working tree with index in %s"
	gitDiffFilesSuccessTemplateConstant            = "Working tree matches index in %s"
	gitDiffFilesFailureTemplateConstant            = "Working tree differs from index in %s (exit code %d%s)"
	gitDiffFilesExecutionFailureTemplateConstant   = "Unable to compare working tree in %s: %s"
	gitLSFilesStartTemplateConstant                = "Listing untracked files in %s"
	gitLSFilesEmptySuccessTemplateConstant         = "No untracked files in %s"
	gitLSFilesSuccessTemplateConstant              = "Found %d untracked files in %s"
	gitLSFilesFailureTemplateConstant              = "Failed to list untracked files in %s (exit code %d%s)"
	gitLSFilesExecutionFailureTemplateConstant     = "Unable to list untracked files in %s: %s"
	gitSymbolicRefStartTemplateConstant            = "Identifying current branch in %s"
	gitSymbolicRefSuccessTemplateConstant          = "Current branch in %s is %s"
	gitSymbolicRefFailureTemplateConstant          = "%s has no symbolic HEAD (exit code %d%s)"
	gitSymbolicRefExecutionFailureTemplateConstant = "Unable to identify current branch in %s: %s"
	gitRevisionStartTemplateConstant               = "Resolving %s in %s"
	gitRevisionSuccessTemplateConstant             = "%s in %s resolved to %s"
	gitRevisionEmptySuccessTemplateConstant        = "%s in %s did not resolve to a revision"
	gitRevisionFailureTemplateConstant             = "Failed to resolve %s in %s (exit code %d%s)"
	gitRevisionExecutionFailureTemplateConstant    = "Unable to resolve %s in %s: %s"
	gitUpstreamStartTemplateConstant               = "Checking upstream branch of %s in %s"
	gitUpstreamSuccessTemplateConstant             = "Upstream branch of %s in %s is %s"
	gitUpstreamMissingSuccessTemplateConstant      = "No upstream branch configured for %s in %s"
	gitUpstreamFailureTemplateConstant             = "Failed to check upstream branch of %s in %s (exit code %d%s)"
	gitUpstreamExecutionFailureTemplateConstant    = "Unable to check upstream branch of %s in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a command that exited with code zero.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing a command that could not be run.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitDiffIndexSubcommandNameConstant:
		return formatter.describeComparison(command, result, failure, stage, gitDiffIndexStartTemplateConstant, gitDiffIndexSuccessTemplateConstant, gitDiffIndexFailureTemplateConstant, gitDiffIndexExecutionFailureTemplateConstant)
	case gitDiffFilesSubcommandNameConstant:
		return formatter.describeComparison(command, result, failure, stage, gitDiffFilesStartTemplateConstant, gitDiffFilesSuccessTemplateConstant, gitDiffFilesFailureTemplateConstant, gitDiffFilesExecutionFailureTemplateConstant)
	case gitLSFilesSubcommandNameConstant:
		return formatter.describeGitLSFilesMessage(command, result, failure, stage)
	case gitSymbolicRefSubcommandNameConstant:
		return formatter.describeGitSymbolicRefMessage(command, result, failure, stage)
	case gitRevParseSubcommandNameConstant:
		return formatter.describeGitRevParseMessage(command, result, failure, stage)
	case gitForEachRefSubcommandNameConstant:
		return formatter.describeGitForEachRefMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeComparison(command ShellCommand, result ExecutionResult, failure error, stage messageStage, startTemplate string, successTemplate string, failureTemplate string, executionFailureTemplate string) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(executionFailureTemplate, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitLSFilesMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitLSFilesStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		fileCount := countLines(result.StandardOutput)
		if fileCount == 0 {
			return fmt.Sprintf(gitLSFilesEmptySuccessTemplateConstant, workingDirectory)
		}
		return fmt.Sprintf(gitLSFilesSuccessTemplateConstant, fileCount, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitLSFilesFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitLSFilesExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitSymbolicRefMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitSymbolicRefStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitSymbolicRefSuccessTemplateConstant, workingDirectory, formatter.ensureValue(result.StandardOutput))
	case messageStageFailure:
		return fmt.Sprintf(gitSymbolicRefFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitSymbolicRefExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitRevParseMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	reference := formatter.lastNonFlagArgument(command.Details.Arguments)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRevisionStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		trimmed := strings.TrimSpace(result.StandardOutput)
		if len(trimmed) == 0 {
			return fmt.Sprintf(gitRevisionEmptySuccessTemplateConstant, reference, workingDirectory)
		}
		return fmt.Sprintf(gitRevisionSuccessTemplateConstant, reference, workingDirectory, trimmed)
	case messageStageFailure:
		return fmt.Sprintf(gitRevisionFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitRevisionExecutionFailureTemplateConstant, reference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitForEachRefMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	reference := formatter.lastNonFlagArgument(command.Details.Arguments)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitUpstreamStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		trimmed := strings.TrimSpace(result.StandardOutput)
		if len(trimmed) == 0 {
			return fmt.Sprintf(gitUpstreamMissingSuccessTemplateConstant, reference, workingDirectory)
		}
		return fmt.Sprintf(gitUpstreamSuccessTemplateConstant, reference, workingDirectory, trimmed)
	case messageStageFailure:
		return fmt.Sprintf(gitUpstreamFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitUpstreamExecutionFailureTemplateConstant, reference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := describeCommand(command)
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) lastNonFlagArgument(arguments []string) string {
	for argumentIndex := len(arguments) - 1; argumentIndex > 0; argumentIndex-- {
		trimmed := strings.TrimSpace(arguments[argumentIndex])
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		return trimmed
	}
	return fallbackUnknownValueLabelConstant
}

func countLines(output string) int {
	trimmed := strings.TrimRight(output, lineSeparatorConstant)
	if len(trimmed) == 0 {
		return 0
	}
	return strings.Count(trimmed, lineSeparatorConstant) + 1
}
