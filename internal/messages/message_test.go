package messages_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/users-app/internal/messages"
)

func TestMessageCaseTransforms(testInstance *testing.T) {
	testCases := []struct {
		name            string
		content         string
		transform       func(message *messages.Message)
		expectedContent string
	}{
		{
			name:            "capitalize_mixed_case",
			content:         "hELLO wORLD",
			transform:       (*messages.Message).Capitalize,
			expectedContent: "Hello world",
		},
		{
			name:            "capitalize_multibyte_first_rune",
			content:         "élan VITAL",
			transform:       (*messages.Message).Capitalize,
			expectedContent: "Élan vital",
		},
		{
			name:            "capitalize_empty",
			content:         "",
			transform:       (*messages.Message).Capitalize,
			expectedContent: "",
		},
		{
			name:            "upper_case",
			content:         "Bye bye!",
			transform:       (*messages.Message).ToUpperCase,
			expectedContent: "BYE BYE!",
		},
		{
			name:            "lower_case",
			content:         "Bye BYE!",
			transform:       (*messages.Message).ToLowerCase,
			expectedContent: "bye bye!",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			message := messages.NewMessage(&bytes.Buffer{}, testCase.content)
			testCase.transform(message)
			require.Equal(testInstance, testCase.expectedContent, message.Content())
		})
	}
}

func TestMessageShowWritesVerbatim(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	message := messages.NewMessage(outputBuffer, "No data...")

	require.NoError(testInstance, message.Show())
	require.Equal(testInstance, "No data...\n", outputBuffer.String())
}
