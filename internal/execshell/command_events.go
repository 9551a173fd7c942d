package execshell

// CommandEventObserver receives lifecycle notifications for every external command a repository check runs.
type CommandEventObserver interface {
	// CommandStarted is called before the process is spawned.
	CommandStarted(command ShellCommand)
	// CommandCompleted is called once the process exited, whatever its exit code.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed is called when the process could not be spawned or waited on.
	CommandExecutionFailed(command ShellCommand, failure error)
}

type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
