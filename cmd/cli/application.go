package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/pending/internal/scan"
	"github.com/temirov/pending/internal/utils"
	"github.com/temirov/pending/internal/utils/flags"
	pathutils "github.com/temirov/pending/internal/utils/path"
)

const (
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	scanConfigurationKeyConstant            = "scan"
	environmentPrefixConstant               = "PENDING"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Scan   scan.Configuration             `mapstructure:"scan"`
}

// ApplicationCommonConfiguration stores logging configuration.
type ApplicationCommonConfiguration struct {
	LogLevel  utils.LogLevel  `mapstructure:"log_level"`
	LogFormat utils.LogFormat `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	defaultLogFormat      utils.LogFormat
	logLevelFlagValue     *flags.ChoiceValue
	logFormatFlagValue    *flags.ChoiceValue
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(configurationTypeConstant, environmentPrefixConstant)
	embeddedConfiguration, embeddedConfigurationType := EmbeddedDefaultConfiguration()
	configurationLoader.SetEmbeddedConfiguration(embeddedConfiguration, embeddedConfigurationType)

	application := &Application{
		configurationLoader: configurationLoader,
		logger:              zap.NewNop(),
		defaultLogFormat:    utils.DefaultLogFormat(os.Stderr),
	}

	scanBuilder := scan.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConfigurationProvider: func() scan.Configuration {
			return application.configuration.Scan
		},
		PathExpander: pathutils.NewHomeExpander(),
	}
	cobraCommand, _ := scanBuilder.Build()

	cobraCommand.SilenceUsage = true
	cobraCommand.SilenceErrors = true
	cobraCommand.PersistentPreRunE = func(command *cobra.Command, arguments []string) error {
		return application.initializeConfiguration(command)
	}
	cobraCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		fmt.Fprint(command.ErrOrStderr(), command.UsageString())
		return UsageError{Cause: flagError}
	})

	cobraCommand.SetContext(context.Background())
	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	application.logLevelFlagValue = flags.AddChoiceFlag(persistentFlags, logLevelFlagNameConstant, string(utils.LogLevelError), utils.LogLevelChoices(), logLevelFlagUsageConstant)
	application.logFormatFlagValue = flags.AddChoiceFlag(persistentFlags, logFormatFlagNameConstant, string(application.defaultLogFormat), utils.LogFormatChoices(), logFormatFlagUsageConstant)

	application.rootCommand = cobraCommand

	return application
}

// Command exposes the root command so callers can redirect its arguments and streams.
func (application *Application) Command() *cobra.Command {
	return application.rootCommand
}

// Execute runs the root command and flushes the logger. The execution error takes precedence
// over a flush failure.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelError),
		commonLogFormatConfigKeyConstant: string(application.defaultLogFormat),
	}
	for configurationKey, configurationValue := range scan.DefaultConfigurationValues(scanConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return UsageError{Cause: fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)}
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = utils.LogLevel(application.logLevelFlagValue.String())
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = utils.LogFormat(application.logFormatFlagValue.String())
	}

	loggerFactory := utils.NewLoggerFactoryWithOutput(command.ErrOrStderr())
	logger, loggerCreationError := loggerFactory.CreateLogger(application.configuration.Common.LogLevel, application.configuration.Common.LogFormat)
	if loggerCreationError != nil {
		return UsageError{Cause: fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)}
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, string(application.configuration.Common.LogLevel)),
		zap.String(configurationLogFormatFieldConstant, string(application.configuration.Common.LogFormat)),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) humanReadableLoggingEnabled() bool {
	return application.configuration.Common.LogFormat == utils.LogFormatConsole
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
