// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the scenelang toolkit. These codes enable
//              structured error handling, CLI exit-code mapping, and error
//              reporting in tooling output.
// Version: v0.1.1
// Created: 2025-11-08
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with core error codes
// - 2025-11-19 v0.1.1: Added include expansion codes and exit-code mapping

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the scenelang toolkit
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Scene parsing (one code per grammar error kind)
	CodeUnexpectedToken    Code = "PARSE_UNEXPECTED_TOKEN"
	CodeUnknownParamType   Code = "PARSE_UNKNOWN_PARAM_TYPE"
	CodeParamValueMismatch Code = "PARSE_PARAM_VALUE_MISMATCH"
	CodeUnbalancedScope    Code = "PARSE_UNBALANCED_SCOPE"
	CodeMalformedLiteral   Code = "PARSE_MALFORMED_LITERAL"
	CodeUnexpectedEOF      Code = "PARSE_UNEXPECTED_EOF"

	// Include expansion
	CodeIncludeNotFound      Code = "INCLUDE_NOT_FOUND"
	CodeIncludeCycle         Code = "INCLUDE_CYCLE"
	CodeIncludeDepthExceeded Code = "INCLUDE_DEPTH_EXCEEDED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// File I/O
	CodeIOError      Code = "IO_ERROR"
	CodeFileTooLarge Code = "FILE_TOO_LARGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeUnexpectedToken, CodeUnknownParamType, CodeParamValueMismatch,
		CodeUnbalancedScope, CodeMalformedLiteral, CodeUnexpectedEOF,
		CodeIncludeNotFound, CodeIncludeCycle, CodeIncludeDepthExceeded,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength,
		CodeIOError, CodeFileTooLarge:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnexpectedToken, CodeUnknownParamType, CodeParamValueMismatch,
		CodeUnbalancedScope, CodeMalformedLiteral, CodeUnexpectedEOF:
		return "parse"
	case CodeIncludeNotFound, CodeIncludeCycle, CodeIncludeDepthExceeded:
		return "include"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	case CodeIOError, CodeFileTooLarge:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit code command-line tools should use when
// they terminate on an error with this code. Parse and structural scene
// defects exit 1, usage and configuration mistakes exit 2, file system
// problems exit 3.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 2
	case CodeIOError, CodeFileTooLarge, CodeNotFound, CodeIncludeNotFound:
		return 3
	default:
		return 1
	}
}
