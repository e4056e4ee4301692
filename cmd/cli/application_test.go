package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/users-app/cmd/cli"
	"github.com/temirov/users-app/internal/utils"
)

const (
	testConfigurationFileNameConstant = "config.yaml"
	testCustomTitleConstant           = "Team roster"
	testEnvironmentTitleConstant      = "Environment roster"
	testTitleEnvironmentNameConstant  = "USERSAPP_CONSOLE_TITLE"
	testDefaultTitleConstant          = "Welcome to the UsersApp!"
	testNoColorFlagConstant           = "--color"
	testNoColorValueConstant          = "no"
)

type sessionResult struct {
	output         string
	errorOutput    string
	executionError error
}

func runSession(testInstance *testing.T, input string, arguments ...string) sessionResult {
	testInstance.Helper()

	application := cli.NewApplication()
	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	application.SetInput(strings.NewReader(input))
	application.SetOutput(outputBuffer)
	application.SetErrorOutput(errorBuffer)

	executionError := application.ExecuteWithArguments(arguments)
	return sessionResult{output: outputBuffer.String(), errorOutput: errorBuffer.String(), executionError: executionError}
}

func writeConfigurationFile(testInstance *testing.T, content map[string]any) string {
	testInstance.Helper()

	encodedContent, marshalError := yaml.Marshal(content)
	require.NoError(testInstance, marshalError)

	configurationFilePath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, encodedContent, 0o600))
	return configurationFilePath
}

func TestApplicationRunsInteractiveSession(testInstance *testing.T) {
	input := "add\nAlice\n30\nadd\nBob\n200\nlist\nedit\nAlice\nAlicia\n31\nlist\nremove\nAlicia\nlist\nfly\nquit\n"

	result := runSession(testInstance, input, testNoColorFlagConstant, testNoColorValueConstant)
	require.NoError(testInstance, result.executionError)

	require.Equal(testInstance, 1, strings.Count(result.output, testDefaultTitleConstant))
	require.Contains(testInstance, result.output, "ℹ Available actions\n")
	require.Contains(testInstance, result.output, "✔ User has been successfully added!\n")
	require.Contains(testInstance, result.output, "✖ Wrong data!\n")
	require.Contains(testInstance, result.output, "✔ User updated!\n")
	require.Contains(testInstance, result.output, "✔ User deleted!\n")
	require.Contains(testInstance, result.output, "✖ Command not found\n")
	require.Contains(testInstance, result.output, "No data...\n")
	require.Equal(testInstance, 3, strings.Count(result.output, "ℹ Users data\n"))
	require.True(testInstance, strings.HasSuffix(result.output, "ℹ Bye bye!\n"))
	require.NotContains(testInstance, result.output, "Bob")
	require.Empty(testInstance, result.errorOutput)
}

func TestApplicationEndsSessionOnExhaustedInput(testInstance *testing.T) {
	result := runSession(testInstance, "list\n", testNoColorFlagConstant, testNoColorValueConstant)
	require.NoError(testInstance, result.executionError)
	require.NotContains(testInstance, result.output, "Bye bye!")
}

func TestApplicationRejectsPositionalArguments(testInstance *testing.T) {
	result := runSession(testInstance, "quit\n", "list")
	require.Error(testInstance, result.executionError)
	require.Empty(testInstance, result.output)
}

func TestApplicationConfigurationSources(testInstance *testing.T) {
	testCases := []struct {
		name             string
		fileTitle        string
		environmentTitle string
		expectedTitle    string
	}{
		{name: "embedded_defaults", expectedTitle: testDefaultTitleConstant},
		{name: "configuration_file", fileTitle: testCustomTitleConstant, expectedTitle: testCustomTitleConstant},
		{name: "environment_overrides_file", fileTitle: testCustomTitleConstant, environmentTitle: testEnvironmentTitleConstant, expectedTitle: testEnvironmentTitleConstant},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			arguments := []string{testNoColorFlagConstant, testNoColorValueConstant}
			if len(testCase.fileTitle) > 0 {
				configurationFilePath := writeConfigurationFile(testInstance, map[string]any{
					"console": map[string]any{"title": testCase.fileTitle},
				})
				arguments = append(arguments, "--config", configurationFilePath)
			}
			if len(testCase.environmentTitle) > 0 {
				testInstance.Setenv(testTitleEnvironmentNameConstant, testCase.environmentTitle)
			}

			result := runSession(testInstance, "quit\n", arguments...)
			require.NoError(testInstance, result.executionError)
			require.Contains(testInstance, result.output, "\n"+testCase.expectedTitle+"\n")
		})
	}
}

func TestApplicationColorFlagOverridesConfiguration(testInstance *testing.T) {
	configurationFilePath := writeConfigurationFile(testInstance, map[string]any{
		"console": map[string]any{"color": true},
	})

	result := runSession(testInstance, "quit\n", "--config", configurationFilePath, testNoColorFlagConstant, testNoColorValueConstant)
	require.NoError(testInstance, result.executionError)
	require.Contains(testInstance, result.output, "ℹ Bye bye!\n")
	require.NotContains(testInstance, result.output, "\x1b[")
}

func TestApplicationEmitsDiagnosticLogs(testInstance *testing.T) {
	result := runSession(testInstance, "add\nAlice\n30\nquit\n", testNoColorFlagConstant, testNoColorValueConstant, "--log-level", "DEBUG", "--log-format", "structured")
	require.NoError(testInstance, result.executionError)

	require.Contains(testInstance, result.errorOutput, "configuration initialized")
	require.Contains(testInstance, result.errorOutput, "\"log_level\":\"debug\"")
	require.Contains(testInstance, result.errorOutput, "user store operation")
	require.Contains(testInstance, result.errorOutput, "session finished")
}

func TestApplicationRejectsInvalidLogLevel(testInstance *testing.T) {
	result := runSession(testInstance, "quit\n", "--log-level", "verbose")
	require.Error(testInstance, result.executionError)
	require.Contains(testInstance, result.executionError.Error(), "unable to create logger")
	require.Empty(testInstance, result.output)
}

func TestEmbeddedDefaultConfiguration(testInstance *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	rawConfiguration := map[string]any{}
	require.NoError(testInstance, yaml.Unmarshal(configurationData, &rawConfiguration))

	decodedConfiguration := cli.ApplicationConfiguration{}
	require.NoError(testInstance, mapstructure.Decode(rawConfiguration, &decodedConfiguration))

	require.Equal(testInstance, utils.LogLevelError, decodedConfiguration.Common.LogLevel)
	require.Equal(testInstance, utils.LogFormatConsole, decodedConfiguration.Common.LogFormat)
	require.True(testInstance, decodedConfiguration.Console.Color)
	require.Equal(testInstance, testDefaultTitleConstant, decodedConfiguration.Console.Title)
}
