package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	questionTemplateConstant = "? %s "
)

// IOPrompter writes questions to an io.Writer and reads one answer line per question from an io.Reader.
type IOPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOPrompter constructs a prompter from the provided reader and writer. A nil writer suppresses questions.
func NewIOPrompter(input io.Reader, output io.Writer) *IOPrompter {
	return &IOPrompter{reader: bufio.NewReader(input), writer: output}
}

// Text asks question and returns the trimmed answer. io.EOF is returned only when the input ends before any
// answer text was read.
func (prompter *IOPrompter) Text(question string) (string, error) {
	if prompter.writer != nil {
		if _, writeError := fmt.Fprintf(prompter.writer, questionTemplateConstant, question); writeError != nil {
			return "", writeError
		}
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil {
		if !errors.Is(readError, io.EOF) {
			return "", readError
		}
		if len(response) == 0 {
			return "", io.EOF
		}
	}

	return strings.TrimSpace(response), nil
}

// Number asks question and parses the answer as a base-10 integer. valid is false when the answer is not a number.
func (prompter *IOPrompter) Number(question string) (value int, valid bool, err error) {
	response, responseError := prompter.Text(question)
	if responseError != nil {
		return 0, false, responseError
	}

	parsedValue, parseError := strconv.Atoi(response)
	if parseError != nil {
		return 0, false, nil
	}
	return parsedValue, true, nil
}
