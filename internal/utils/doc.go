// Package utils exposes reusable helpers consumed by the users-app CLI.
//
// It houses ConfigurationLoader and LoggerFactory abstractions that integrate
// Viper, environment variables, and zap logging, plus FlushingWriter, which
// keeps log output visible immediately while the interactive prompt waits.
package utils
