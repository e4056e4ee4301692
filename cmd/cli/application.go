package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/users-app/internal/messages"
	"github.com/temirov/users-app/internal/prompt"
	"github.com/temirov/users-app/internal/session"
	"github.com/temirov/users-app/internal/users"
	"github.com/temirov/users-app/internal/utils"
	flagutils "github.com/temirov/users-app/internal/utils/flags"
)

const (
	applicationNameConstant                 = "users-app"
	applicationShortDescriptionConstant     = "Interactive in-memory user list"
	applicationLongDescriptionConstant      = "users-app keeps a list of users (name, age) for the lifetime of the process and lets an operator list, add, remove, and edit records through a prompt loop."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	colorFlagNameConstant                   = "color"
	colorFlagUsageConstant                  = "Colorize notification badges."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	consoleConfigurationKeyConstant         = "console"
	consoleColorConfigKeyConstant           = consoleConfigurationKeyConstant + ".color"
	environmentPrefixConstant               = "USERSAPP"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationColorFieldConstant         = "color"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	sessionFailureErrorTemplateConstant     = "session ended unexpectedly: %w"
	sessionStartedMessageConstant           = "session started"
	sessionFinishedMessageConstant          = "session finished"
	defaultConfigurationSearchPathConstant  = "."
	userConfigurationDirectoryNameConstant  = applicationNameConstant
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common  ApplicationCommonConfiguration  `mapstructure:"common"`
	Console ApplicationConsoleConfiguration `mapstructure:"console"`
}

// ApplicationCommonConfiguration stores logging configuration.
type ApplicationCommonConfiguration struct {
	LogLevel  utils.LogLevel  `mapstructure:"log_level"`
	LogFormat utils.LogFormat `mapstructure:"log_format"`
}

// ApplicationConsoleConfiguration controls the operator-facing console.
type ApplicationConsoleConfiguration struct {
	Color bool   `mapstructure:"color"`
	Title string `mapstructure:"title"`
}

// Application wires the Cobra root command, configuration loader, structured logger, and session loop.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
	colorFlagValue        bool
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths(),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		logger:              zap.NewNop(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runSession(command)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
	flagutils.AddToggleFlag(cobraCommand.PersistentFlags(), &application.colorFlagValue, colorFlagNameConstant, true, colorFlagUsageConstant)

	application.rootCommand = cobraCommand

	return application
}

// SetInput replaces the stream operator answers are read from.
func (application *Application) SetInput(input io.Reader) {
	application.rootCommand.SetIn(input)
}

// SetOutput replaces the stream banners, listings, and notifications are written to.
func (application *Application) SetOutput(output io.Writer) {
	application.rootCommand.SetOut(output)
}

// SetErrorOutput replaces the stream diagnostic logs are written to.
func (application *Application) SetErrorOutput(output io.Writer) {
	application.rootCommand.SetErr(output)
}

// Execute runs the application with the process arguments.
func (application *Application) Execute() error {
	return application.ExecuteWithArguments(os.Args[1:])
}

// ExecuteWithArguments runs the root command with arguments and ensures logger flushing.
func (application *Application) ExecuteWithArguments(arguments []string) error {
	application.rootCommand.SetArgs(flagutils.NormalizeToggleArguments(arguments))
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes it with the process arguments.
func Execute() error {
	return NewApplication().Execute()
}

func configurationSearchPaths() []string {
	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if userConfigurationDirectory, userConfigurationDirectoryError := os.UserConfigDir(); userConfigurationDirectoryError == nil {
		searchPaths = append(searchPaths, filepath.Join(userConfigurationDirectory, userConfigurationDirectoryNameConstant))
	}
	return searchPaths
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelError),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
		consoleColorConfigKeyConstant:    true,
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		if unmarshalError := application.configuration.Common.LogLevel.UnmarshalText([]byte(application.logLevelFlagValue)); unmarshalError != nil {
			return fmt.Errorf(configurationLoadErrorTemplateConstant, unmarshalError)
		}
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		if unmarshalError := application.configuration.Common.LogFormat.UnmarshalText([]byte(application.logFormatFlagValue)); unmarshalError != nil {
			return fmt.Errorf(configurationLoadErrorTemplateConstant, unmarshalError)
		}
	}

	if application.persistentFlagChanged(command, colorFlagNameConstant) {
		application.configuration.Console.Color = application.colorFlagValue
	}

	logger, loggerCreationError := utils.NewLoggerFactory(command.ErrOrStderr()).CreateLogger(
		application.configuration.Common.LogLevel,
		application.configuration.Common.LogFormat,
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, string(application.configuration.Common.LogLevel)),
		zap.String(configurationLogFormatFieldConstant, string(application.configuration.Common.LogFormat)),
		zap.Bool(configurationColorFieldConstant, application.configuration.Console.Color),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) runSession(command *cobra.Command) error {
	output := utils.NewFlushingWriter(command.OutOrStdout())
	notifier := messages.NewConsoleNotifier(output, application.logger, application.configuration.Console.Color)
	store := users.NewStore(notifier, output, application.logger)
	prompter := prompt.NewIOPrompter(command.InOrStdin(), output)
	loop := session.NewLoop(prompter, store, notifier, output, application.logger, application.configuration.Console.Title)

	application.logger.Info(sessionStartedMessageConstant)
	if runError := loop.Run(command.Context()); runError != nil {
		return fmt.Errorf(sessionFailureErrorTemplateConstant, runError)
	}
	application.logger.Info(sessionFinishedMessageConstant)

	return nil
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
	if command.Flags().Changed(flagName) {
		return true
	}
	rootCommand := command.Root()
	return rootCommand != nil && rootCommand.PersistentFlags().Changed(flagName)
}
