package messages

import (
	"errors"
	"fmt"
)

const (
	severitySuccessStringConstant        = "success"
	severityErrorStringConstant          = "error"
	severityInfoStringConstant           = "info"
	invalidSeverityErrorTemplateConstant = "%w: %q"
)

// Severity classifies a notification and selects its display channel.
type Severity string

// Supported severities.
const (
	SeveritySuccess Severity = Severity(severitySuccessStringConstant)
	SeverityError   Severity = Severity(severityErrorStringConstant)
	SeverityInfo    Severity = Severity(severityInfoStringConstant)
)

// ErrInvalidSeverity indicates a notification classified with an unknown severity.
var ErrInvalidSeverity = errors.New("invalid severity")

// Validate reports ErrInvalidSeverity for anything other than success, error, or info.
func (severity Severity) Validate() error {
	switch severity {
	case SeveritySuccess, SeverityError, SeverityInfo:
		return nil
	default:
		return fmt.Errorf(invalidSeverityErrorTemplateConstant, ErrInvalidSeverity, string(severity))
	}
}
