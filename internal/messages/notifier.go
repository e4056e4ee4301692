package messages

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	notificationLineTemplateConstant = "%s %s\n"
	notificationLogMessageConstant   = "notification emitted"
	logFieldSeverityConstant         = "severity"
	logFieldContentConstant          = "content"
	successSymbolConstant            = "✔"
	errorSymbolConstant              = "✖"
	infoSymbolConstant               = "ℹ"
)

type notificationChannel struct {
	symbol   string
	style    color.Color
	logLevel zapcore.Level
}

var severityChannels = map[Severity]notificationChannel{
	SeveritySuccess: {symbol: successSymbolConstant, style: color.FgGreen, logLevel: zapcore.InfoLevel},
	SeverityError:   {symbol: errorSymbolConstant, style: color.FgRed, logLevel: zapcore.WarnLevel},
	SeverityInfo:    {symbol: infoSymbolConstant, style: color.FgCyan, logLevel: zapcore.DebugLevel},
}

// ConsoleNotifier renders severity-classified notifications on the console and mirrors them to a zap logger.
type ConsoleNotifier struct {
	output        io.Writer
	logger        *zap.Logger
	colorsEnabled bool
}

// NewConsoleNotifier constructs a notifier writing to output (standard output when nil).
func NewConsoleNotifier(output io.Writer, logger *zap.Logger, colorsEnabled bool) *ConsoleNotifier {
	if output == nil {
		output = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleNotifier{output: output, logger: logger, colorsEnabled: colorsEnabled}
}

// Emit routes content to the channel registered for severity. Unknown severities are rejected with
// ErrInvalidSeverity and nothing is written.
func (notifier *ConsoleNotifier) Emit(severity Severity, content string) error {
	if validationError := severity.Validate(); validationError != nil {
		return validationError
	}
	channel := severityChannels[severity]

	if checkedEntry := notifier.logger.Check(channel.logLevel, notificationLogMessageConstant); checkedEntry != nil {
		checkedEntry.Write(
			zap.String(logFieldSeverityConstant, string(severity)),
			zap.String(logFieldContentConstant, content),
		)
	}

	badge := channel.symbol
	if notifier.colorsEnabled {
		badge = channel.style.Sprint(channel.symbol)
	}

	_, writeError := fmt.Fprintf(notifier.output, notificationLineTemplateConstant, badge, content)
	return writeError
}
