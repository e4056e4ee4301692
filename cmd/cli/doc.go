// Package cli constructs the users-app command-line interface, wiring the
// Cobra root command, configuration loader, and structured logging
// primitives around the interactive session loop.
package cli
