package messages

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	messageLineTemplateConstant = "%s\n"
)

// Message holds a text payload that can be reshaped before it is shown.
type Message struct {
	content string
	output  io.Writer
}

// NewMessage constructs a Message written to output, or standard output when output is nil.
func NewMessage(output io.Writer, content string) *Message {
	if output == nil {
		output = os.Stdout
	}
	return &Message{content: content, output: output}
}

// Content returns the current payload.
func (message *Message) Content() string {
	return message.content
}

// Show writes the payload verbatim followed by a newline.
func (message *Message) Show() error {
	_, writeError := fmt.Fprintf(message.output, messageLineTemplateConstant, message.content)
	return writeError
}

// Capitalize upper-cases the first character and lower-cases the remainder.
func (message *Message) Capitalize() {
	if len(message.content) == 0 {
		return
	}
	_, firstRuneWidth := utf8.DecodeRuneInString(message.content)
	message.content = cases.Upper(language.Und).String(message.content[:firstRuneWidth]) +
		cases.Lower(language.Und).String(message.content[firstRuneWidth:])
}

// ToUpperCase upper-cases the whole payload.
func (message *Message) ToUpperCase() {
	message.content = cases.Upper(language.Und).String(message.content)
}

// ToLowerCase lower-cases the whole payload.
func (message *Message) ToLowerCase() {
	message.content = cases.Lower(language.Und).String(message.content)
}
