package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testToggleFlagNameConstant = "color"

func TestAddToggleFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		defaultValue    bool
		expectedValue   bool
		expectedChanged bool
	}{
		{name: "DefaultTrue", arguments: []string{}, defaultValue: true, expectedValue: true, expectedChanged: false},
		{name: "ImplicitTrue", arguments: []string{"--color"}, defaultValue: false, expectedValue: true, expectedChanged: true},
		{name: "ExplicitNo", arguments: []string{"--color", "no"}, defaultValue: true, expectedValue: false, expectedChanged: true},
		{name: "ExplicitOffUppercase", arguments: []string{"--color", "OFF"}, defaultValue: true, expectedValue: false, expectedChanged: true},
		{name: "AssignedYes", arguments: []string{"--color=yes"}, defaultValue: false, expectedValue: true, expectedChanged: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}

			var toggleValue bool
			AddToggleFlag(command.Flags(), &toggleValue, testToggleFlagNameConstant, testCase.defaultValue, "Colorize output")

			parseError := command.ParseFlags(NormalizeToggleArguments(testCase.arguments))
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedValue, toggleValue)

			flag := command.Flags().Lookup(testToggleFlagNameConstant)
			require.NotNil(t, flag)
			require.Equal(t, testCase.expectedChanged, flag.Changed)
		})
	}
}

func TestAddToggleFlagRejectsInvalidValues(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, testToggleFlagNameConstant, false, "Colorize output")

	parseError := command.ParseFlags([]string{"--color=maybe"})
	require.Error(t, parseError)
	require.False(t, toggleValue)
}

func TestNormalizeToggleArgumentsLeavesOtherArgumentsAlone(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, testToggleFlagNameConstant, false, "Colorize output")

	require.Equal(t, []string{"--log-level", "debug", "--color=no"}, NormalizeToggleArguments([]string{"--log-level", "debug", "--color", "no"}))
	require.Equal(t, []string{"--color", "--", "yes"}, NormalizeToggleArguments([]string{"--color", "--", "yes"}))
	require.Equal(t, []string{}, NormalizeToggleArguments(nil))
}

func TestToggleUsageHighlightsDefault(t *testing.T) {
	require.Equal(t, "`<YES|no>` Colorize output", formatToggleUsage("Colorize output", true))
	require.Equal(t, "`<yes|NO>`", formatToggleUsage("  ", false))
}
