package execshell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/pending/internal/execshell"
)

const (
	testExecutionSuccessCaseNameConstant         = "success"
	testExecutionFailureCaseNameConstant         = "failure_exit_code"
	testExecutionRunnerErrorCaseNameConstant     = "runner_error"
	testCommandArgumentConstant                  = "diff-files"
	testQuietFlagConstant                        = "--quiet"
	testWorkingDirectoryConstant                 = "/workspace/repository"
	testStandardErrorOutputConstant              = "failure"
	testLoggerInitializationCaseNameConstant     = "logger_validation"
	testRunnerInitializationCaseNameConstant     = "runner_validation"
	testSuccessfulInitializationCaseNameConstant = "successful_initialization"
)

type recordingCommandRunner struct {
	executionResult  execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.ShellCommand
}

func (runner *recordingCommandRunner) Run(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error) {
	runner.recordedCommands = append(runner.recordedCommands, command)
	return runner.executionResult, runner.executionError
}

type recordingCommandEventObserver struct {
	startedCount   int
	completedCodes []int
	failures       []error
}

func (observer *recordingCommandEventObserver) CommandStarted(execshell.ShellCommand) {
	observer.startedCount++
}

func (observer *recordingCommandEventObserver) CommandCompleted(_ execshell.ShellCommand, result execshell.ExecutionResult) {
	observer.completedCodes = append(observer.completedCodes, result.ExitCode)
}

func (observer *recordingCommandEventObserver) CommandExecutionFailed(_ execshell.ShellCommand, failure error) {
	observer.failures = append(observer.failures, failure)
}

func TestShellExecutorInitializationValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logger        *zap.Logger
		runner        execshell.CommandRunner
		expectError   error
		expectSuccess bool
	}{
		{
			name:        testLoggerInitializationCaseNameConstant,
			logger:      nil,
			runner:      &recordingCommandRunner{},
			expectError: execshell.ErrLoggerNotConfigured,
		},
		{
			name:        testRunnerInitializationCaseNameConstant,
			logger:      zap.NewNop(),
			runner:      nil,
			expectError: execshell.ErrCommandRunnerNotConfigured,
		},
		{
			name:          testSuccessfulInitializationCaseNameConstant,
			logger:        zap.NewNop(),
			runner:        &recordingCommandRunner{},
			expectSuccess: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor, creationError := execshell.NewShellExecutor(testCase.logger, testCase.runner)
			if testCase.expectSuccess {
				require.NoError(testInstance, creationError)
				require.NotNil(testInstance, executor)
			} else {
				require.Error(testInstance, creationError)
				require.ErrorIs(testInstance, creationError, testCase.expectError)
			}
		})
	}
}

func TestShellExecutorExecuteBehavior(testInstance *testing.T) {
	runnerFailure := errors.New("runner failure")

	testCases := []struct {
		name               string
		runnerResult       execshell.ExecutionResult
		runnerError        error
		expectErrorType    any
		expectedLogCount   int
		expectedCompleted  []int
		expectedFailureLen int
	}{
		{
			name: testExecutionSuccessCaseNameConstant,
			runnerResult: execshell.ExecutionResult{
				StandardOutput: "ok",
				ExitCode:       0,
			},
			expectedLogCount:  2,
			expectedCompleted: []int{0},
		},
		{
			name: testExecutionFailureCaseNameConstant,
			runnerResult: execshell.ExecutionResult{
				StandardOutput: "partial",
				StandardError:  testStandardErrorOutputConstant,
				ExitCode:       1,
			},
			expectErrorType:   execshell.CommandFailedError{},
			expectedLogCount:  2,
			expectedCompleted: []int{1},
		},
		{
			name:               testExecutionRunnerErrorCaseNameConstant,
			runnerError:        runnerFailure,
			expectErrorType:    execshell.CommandExecutionError{},
			expectedLogCount:   2,
			expectedFailureLen: 1,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observerLogs := observer.New(zap.DebugLevel)
			logger := zap.New(observerCore)

			recordingRunner := &recordingCommandRunner{
				executionResult: testCase.runnerResult,
				executionError:  testCase.runnerError,
			}
			eventObserver := &recordingCommandEventObserver{}

			shellExecutor, creationError := execshell.NewShellExecutorWithObserver(logger, recordingRunner, eventObserver)
			require.NoError(testInstance, creationError)

			commandDetails := execshell.CommandDetails{Arguments: []string{testCommandArgumentConstant, testQuietFlagConstant}, WorkingDirectory: testWorkingDirectoryConstant}
			executionResult, executionError := shellExecutor.ExecuteGit(context.Background(), commandDetails)

			if testCase.expectErrorType != nil {
				require.Error(testInstance, executionError)
				require.IsType(testInstance, testCase.expectErrorType, executionError)
				require.Empty(testInstance, executionResult.StandardOutput)
			} else {
				require.NoError(testInstance, executionError)
				require.Equal(testInstance, testCase.runnerResult.StandardOutput, executionResult.StandardOutput)
			}

			require.Len(testInstance, observerLogs.All(), testCase.expectedLogCount)
			require.Equal(testInstance, 1, eventObserver.startedCount)
			require.Equal(testInstance, testCase.expectedCompleted, eventObserver.completedCodes)
			require.Len(testInstance, eventObserver.failures, testCase.expectedFailureLen)

			require.Len(testInstance, recordingRunner.recordedCommands, 1)
			recordedCommand := recordingRunner.recordedCommands[0]
			require.Equal(testInstance, execshell.CommandGit, recordedCommand.Name)
			require.Equal(testInstance, testWorkingDirectoryConstant, recordedCommand.Details.WorkingDirectory)
		})
	}
}

func TestShellExecutorFailureCarriesResult(testInstance *testing.T) {
	recordingRunner := &recordingCommandRunner{
		executionResult: execshell.ExecutionResult{StandardOutput: "untracked.txt\n", ExitCode: 128},
	}

	shellExecutor, creationError := execshell.NewShellExecutor(zap.NewNop(), recordingRunner)
	require.NoError(testInstance, creationError)

	_, executionError := shellExecutor.ExecuteGit(context.Background(), execshell.CommandDetails{Arguments: []string{"ls-files"}})

	var commandFailure execshell.CommandFailedError
	require.ErrorAs(testInstance, executionError, &commandFailure)
	require.Equal(testInstance, 128, commandFailure.Result.ExitCode)
	require.Equal(testInstance, "untracked.txt\n", commandFailure.Result.StandardOutput)
	require.Equal(testInstance, "git ls-files exited with code 128", commandFailure.Error())
}

func TestShellExecutorExecutionErrorUnwrapsCause(testInstance *testing.T) {
	startFailure := execshell.ProcessStartError{Cause: errors.New("executable file not found")}
	recordingRunner := &recordingCommandRunner{executionError: startFailure}

	shellExecutor, creationError := execshell.NewShellExecutor(zap.NewNop(), recordingRunner)
	require.NoError(testInstance, creationError)

	_, executionError := shellExecutor.ExecuteGit(context.Background(), execshell.CommandDetails{Arguments: []string{"diff-files", "--quiet"}})

	var unwrappedStartFailure execshell.ProcessStartError
	require.ErrorAs(testInstance, executionError, &unwrappedStartFailure)
	require.Equal(testInstance, "git diff-files --quiet could not be executed: failed to start process: executable file not found", executionError.Error())
}
