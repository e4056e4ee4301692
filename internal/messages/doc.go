// Package messages formats operator-facing text for the users-app console.
//
// Message wraps a mutable text payload with case transforms. ConsoleNotifier
// classifies notifications by Severity and renders each severity on its own
// colored console channel while mirroring it to the diagnostic zap logger.
package messages
