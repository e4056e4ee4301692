package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/users-app/internal/messages"
	"github.com/temirov/users-app/internal/users"
)

const (
	actionPromptConstant               = "How can I help you?"
	namePromptConstant                 = "Enter name"
	agePromptConstant                  = "Enter age"
	editTargetPromptConstant           = "Enter name for edit"
	newNamePromptConstant              = "Enter new name"
	newAgePromptConstant               = "Enter new age"
	commandNotFoundMessageConstant     = "Command not found"
	farewellMessageConstant            = "Bye bye!"
	availableActionsMessageConstant    = "Available actions"
	defaultTitleConstant               = "Welcome to the UsersApp!"
	bannerDividerConstant              = "===================================="
	actionLineTemplateConstant         = "%s – %s"
	promptFailureErrorTemplateConstant = "unable to read %s answer: %w"
	actionDispatchedLogMessage         = "action dispatched"
	actionRejectedLogMessage           = "action rejected"
	actionOutcomeLogMessage            = "action outcome"
	inputExhaustedLogMessage           = "input exhausted; leaving session"
	notificationFailedLogMessage       = "notification failed"
	logFieldActionConstant             = "action"
	logFieldKeywordConstant            = "keyword"
	invalidAgeConstant                 = 0
)

// Prompter collects operator answers.
type Prompter interface {
	Text(question string) (string, error)
	Number(question string) (value int, valid bool, err error)
}

// UserStore is the record store driven by the loop.
type UserStore interface {
	ShowAll() error
	Add(candidate users.User) error
	Remove(name string) error
	Edit(targetName string, replacement users.User) error
}

// Notifier reports severity-classified notifications.
type Notifier interface {
	Emit(severity messages.Severity, content string) error
}

// Loop is the interactive command loop. It owns no records itself; the store outlives each iteration.
type Loop struct {
	prompter Prompter
	store    UserStore
	notifier Notifier
	output   io.Writer
	logger   *zap.Logger
	title    string
}

// NewLoop wires a loop. Banner lines go to output (standard output when nil); an empty title selects the default.
func NewLoop(prompter Prompter, store UserStore, notifier Notifier, output io.Writer, logger *zap.Logger, title string) *Loop {
	if output == nil {
		output = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(strings.TrimSpace(title)) == 0 {
		title = defaultTitleConstant
	}
	return &Loop{prompter: prompter, store: store, notifier: notifier, output: output, logger: logger, title: title}
}

// Run prints the banner once and serves actions until quit, end of input, or context cancellation.
func (loop *Loop) Run(executionContext context.Context) error {
	if executionContext == nil {
		executionContext = context.Background()
	}

	if bannerError := loop.printBanner(); bannerError != nil {
		return bannerError
	}

	for {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		keyword, promptError := loop.prompter.Text(actionPromptConstant)
		if promptError != nil {
			return loop.handlePromptError(promptError, logFieldActionConstant)
		}

		action, parseError := ParseAction(keyword)
		if parseError != nil {
			loop.logger.Debug(actionRejectedLogMessage, zap.String(logFieldKeywordConstant, keyword))
			loop.notify(messages.SeverityError, commandNotFoundMessageConstant)
			continue
		}

		loop.logger.Debug(actionDispatchedLogMessage, zap.String(logFieldActionConstant, string(action)))

		if action == ActionQuit {
			loop.notify(messages.SeverityInfo, farewellMessageConstant)
			return nil
		}

		if dispatchError := loop.dispatch(action); dispatchError != nil {
			return loop.handlePromptError(dispatchError, string(action))
		}
	}
}

// dispatch returns only prompt failures; store outcomes have already been reported to the operator.
func (loop *Loop) dispatch(action Action) error {
	var outcomeError error

	switch action {
	case ActionList:
		outcomeError = loop.store.ShowAll()
	case ActionAdd:
		candidate, promptError := loop.promptUser(namePromptConstant, agePromptConstant)
		if promptError != nil {
			return promptError
		}
		outcomeError = loop.store.Add(candidate)
	case ActionRemove:
		name, promptError := loop.prompter.Text(namePromptConstant)
		if promptError != nil {
			return promptError
		}
		outcomeError = loop.store.Remove(name)
	case ActionEdit:
		targetName, promptError := loop.prompter.Text(editTargetPromptConstant)
		if promptError != nil {
			return promptError
		}
		replacement, replacementError := loop.promptUser(newNamePromptConstant, newAgePromptConstant)
		if replacementError != nil {
			return replacementError
		}
		outcomeError = loop.store.Edit(targetName, replacement)
	}

	if outcomeError != nil {
		loop.logger.Debug(actionOutcomeLogMessage, zap.String(logFieldActionConstant, string(action)), zap.Error(outcomeError))
	}
	return nil
}

func (loop *Loop) promptUser(nameQuestion string, ageQuestion string) (users.User, error) {
	name, nameError := loop.prompter.Text(nameQuestion)
	if nameError != nil {
		return users.User{}, nameError
	}

	age, ageValid, ageError := loop.prompter.Number(ageQuestion)
	if ageError != nil {
		return users.User{}, ageError
	}
	if !ageValid {
		age = invalidAgeConstant
	}

	return users.User{Name: name, Age: age}, nil
}

func (loop *Loop) handlePromptError(promptError error, stage string) error {
	if errors.Is(promptError, io.EOF) {
		loop.logger.Debug(inputExhaustedLogMessage, zap.String(logFieldActionConstant, stage))
		return nil
	}
	return fmt.Errorf(promptFailureErrorTemplateConstant, stage, promptError)
}

func (loop *Loop) printBanner() error {
	lines := []string{"", loop.title, bannerDividerConstant}
	for _, line := range lines {
		if showError := messages.NewMessage(loop.output, line).Show(); showError != nil {
			return showError
		}
	}

	loop.notify(messages.SeverityInfo, availableActionsMessageConstant)

	lines = []string{""}
	for _, available := range availableActions {
		lines = append(lines, fmt.Sprintf(actionLineTemplateConstant, available.action, available.description))
	}
	lines = append(lines, "")

	for _, line := range lines {
		if showError := messages.NewMessage(loop.output, line).Show(); showError != nil {
			return showError
		}
	}
	return nil
}

func (loop *Loop) notify(severity messages.Severity, content string) {
	if loop.notifier == nil {
		return
	}
	if emitError := loop.notifier.Emit(severity, content); emitError != nil {
		loop.logger.Warn(notificationFailedLogMessage, zap.Error(emitError))
	}
}
