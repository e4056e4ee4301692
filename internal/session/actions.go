package session

import (
	"errors"
	"fmt"
)

const (
	unrecognizedCommandErrorTemplateConstant = "%w: %q"
)

// Action is a recognized command keyword.
type Action string

// Recognized actions.
const (
	ActionList   Action = "list"
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionEdit   Action = "edit"
	ActionQuit   Action = "quit"
)

// ErrUnrecognizedCommand indicates an action keyword outside the recognized set.
var ErrUnrecognizedCommand = errors.New("unrecognized command")

type actionDescription struct {
	action      Action
	description string
}

var availableActions = []actionDescription{
	{action: ActionList, description: "show all users"},
	{action: ActionAdd, description: "add new user to the list"},
	{action: ActionRemove, description: "remove user from the list"},
	{action: ActionEdit, description: "edit user from the list"},
	{action: ActionQuit, description: "quit the app"},
}

// ParseAction matches keyword exactly against the recognized actions.
func ParseAction(keyword string) (Action, error) {
	for _, available := range availableActions {
		if string(available.action) == keyword {
			return available.action, nil
		}
	}
	return "", fmt.Errorf(unrecognizedCommandErrorTemplateConstant, ErrUnrecognizedCommand, keyword)
}
