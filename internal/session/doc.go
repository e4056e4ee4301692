// Package session drives the interactive users-app prompt loop.
//
// Loop prints the welcome banner once, then repeatedly asks for an action
// keyword, collects any follow-up fields, and dispatches to the user store
// until the operator quits or the input stream ends.
package session
