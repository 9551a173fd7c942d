package scan

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pending/internal/execshell"
	"github.com/temirov/pending/internal/pending"
	"github.com/temirov/pending/internal/repos/dependencies"
	"github.com/temirov/pending/internal/repos/discovery"
	"github.com/temirov/pending/internal/ui"
	"github.com/temirov/pending/internal/vcs"
)

// CommandBuilder assembles the scan cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	ConfigurationProvider        ConfigurationProvider
	PathExpander                 PathExpander
	GitExecutor                  vcs.GitExecutor
	FileSystem                   discovery.FileSystem
	Backends                     []vcs.Backend
}

// Build constructs the cobra command that scans for pending work.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescription,
		Long:  commandLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	command.Flags().BoolP(flagUncommittedName, flagUncommittedShorthand, false, flagUncommittedDescription)
	command.Flags().BoolP(flagUntrackedName, flagUntrackedShorthand, false, flagUntrackedDescription)
	command.Flags().BoolP(flagUnstagedName, flagUnstagedShorthand, false, flagUnstagedDescription)
	command.Flags().BoolP(flagUnpushedName, flagUnpushedShorthand, false, flagUnpushedDescription)
	command.Flags().BoolP(flagAllName, flagAllShorthand, false, flagAllDescription)
	command.Flags().Bool(flagSkipUnreadableName, false, flagSkipUnreadableDescription)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command, arguments)
	configuration := builder.resolveConfiguration(command)
	logger := builder.resolveLogger()

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, builder.resolveCommandEventObserver(logger))
	if executorError != nil {
		return executorError
	}

	walker, walkerError := discovery.NewRepositoryWalker(discovery.WalkerConfiguration{
		FileSystem:     dependencies.ResolveFileSystem(builder.FileSystem),
		Backends:       dependencies.ResolveBackends(builder.Backends, gitExecutor),
		Reporter:       pending.NewFindingReporter(command.OutOrStdout()),
		WarningWriter:  command.ErrOrStderr(),
		Logger:         logger,
		SkipUnreadable: configuration.SkipUnreadable,
	})
	if walkerError != nil {
		return walkerError
	}

	return NewService(walker, logger).Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) CommandOptions {
	selectedChecks := pending.NewCheckSet()
	checkFlags := []struct {
		name  string
		check pending.Check
	}{
		{name: flagUncommittedName, check: pending.CheckUncommitted},
		{name: flagUntrackedName, check: pending.CheckUntracked},
		{name: flagUnstagedName, check: pending.CheckUnstaged},
		{name: flagUnpushedName, check: pending.CheckUnpushed},
	}
	for _, checkFlag := range checkFlags {
		if enabled, _ := command.Flags().GetBool(checkFlag.name); enabled {
			selectedChecks = selectedChecks.With(checkFlag.check)
		}
	}
	if allSelected, _ := command.Flags().GetBool(flagAllName); allSelected {
		selectedChecks = pending.AllChecks
	}

	paths := append([]string{}, arguments...)
	if builder.PathExpander != nil {
		paths = builder.PathExpander.ExpandAll(paths)
	}

	return CommandOptions{Paths: paths, Checks: selectedChecks}
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	if command.Flags().Changed(flagSkipUnreadableName) {
		configuration.SkipUnreadable, _ = command.Flags().GetBool(flagSkipUnreadableName)
	}
	return configuration
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveCommandEventObserver(logger *zap.Logger) execshell.CommandEventObserver {
	if builder.HumanReadableLoggingProvider == nil || !builder.HumanReadableLoggingProvider() {
		return nil
	}
	return ui.NewConsoleCommandEventLogger(logger)
}
