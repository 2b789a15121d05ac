// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and reporting. Severity distinguishes malformed
//              user scenes (expected, low) from toolkit-side failures
//              (unexpected, high).
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected error that does not affect the toolkit
	// Examples: syntax errors in user scene files, invalid parameter values
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects an operation but has workarounds
	// Examples: missing include files, configuration fallbacks, oversized inputs
	SeverityMedium

	// SeverityHigh indicates a serious error inside the toolkit itself
	// Examples: violated internal invariants, unreadable toolkit state
	SeverityHigh

	// SeverityCritical indicates an error that makes the toolkit unusable
	// Examples: corrupted installation, unrecoverable environment problems
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ShouldLog returns true if this severity level should be logged
func (s Severity) ShouldLog() bool {
	return true // All severities should be logged
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Toolkit-side failures
	case CodeInternal:
		return SeverityHigh

	// Operational errors with workarounds
	case CodeIncludeNotFound, CodeIncludeCycle, CodeIncludeDepthExceeded,
		CodeIOError, CodeFileTooLarge, CodeTimeout,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Expected user-input errors
	case CodeInvalidInput, CodeNotFound,
		CodeUnexpectedToken, CodeUnknownParamType, CodeParamValueMismatch,
		CodeUnbalancedScope, CodeMalformedLiteral, CodeUnexpectedEOF,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
