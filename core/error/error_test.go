// File: error_test.go
// Title: Error Module Tests
// Description: Tests for the error module covering error creation, wrapping,
//              codes, severity, and metadata.
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with test coverage

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("include missing").WithCode(CodeIncludeNotFound),
			message: "wrapper message",
			wantMsg: "wrapper message: include missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			// Test that structured error properties are preserved
			if slErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != slErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), slErr.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	// Test error messages
	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	// Test unwrapping
	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	// Test root cause
	rootCause := top.RootCause()
	if rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}
}

func TestChainTruncation(t *testing.T) {
	err := error(errors.New("root"))
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, "layer")
	}

	top, ok := err.(*Error)
	if !ok {
		t.Fatal("expected *Error")
	}

	if !strings.Contains(top.Error(), "chain truncated") {
		t.Errorf("Error() = %q, want truncation marker", top.Error())
	}

	if top.Details()["truncated"] != true {
		t.Error("truncated detail should be set")
	}
}

func TestWithCode(t *testing.T) {
	err := New("test error").WithCode(CodeUnbalancedScope)

	if err.Code() != CodeUnbalancedScope {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnbalancedScope)
	}

	// Should auto-set severity based on code
	expectedSeverity := GetSeverityFromCode(CodeUnbalancedScope)
	if err.Severity() != expectedSeverity {
		t.Errorf("Severity() = %v, want %v", err.Severity(), expectedSeverity)
	}
}

func TestWithSeverity(t *testing.T) {
	err := New("test error").WithSeverity(SeverityCritical)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("test error").
		WithDetail("file", "scene.pbrt").
		WithDetail("line", 42)

	details := err.Details()

	if len(details) != 2 {
		t.Errorf("Details() length = %d, want 2", len(details))
	}

	if details["file"] != "scene.pbrt" {
		t.Errorf("Details()[\"file\"] = %v, want \"scene.pbrt\"", details["file"])
	}

	if details["line"] != 42 {
		t.Errorf("Details()[\"line\"] = %v, want 42", details["line"])
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"file":   "scene.pbrt",
		"line":   42,
		"column": 7,
	}

	err := New("test error").WithDetails(details)

	errDetails := err.Details()
	if len(errDetails) != 3 {
		t.Errorf("Details() length = %d, want 3", len(errDetails))
	}

	for k, v := range details {
		if errDetails[k] != v {
			t.Errorf("Details()[%q] = %v, want %v", k, errDetails[k], v)
		}
	}
}

func TestWithContext(t *testing.T) {
	context := "engine.Expand"
	err := New("test error").WithContext(context)

	if err.Context() != context {
		t.Errorf("Context() = %q, want %q", err.Context(), context)
	}
}

func TestWithOperation(t *testing.T) {
	operation := "resolver.Resolve"
	err := New("test error").WithOperation(operation)

	if err.Operation() != operation {
		t.Errorf("Operation() = %q, want %q", err.Operation(), operation)
	}
}

func TestWithRunID(t *testing.T) {
	runID := "6c2a9f40-1db2-4f5e-8a8e-0c9a2f6f6d21"
	err := New("test error").WithRunID(runID)

	if err.RunID() != runID {
		t.Errorf("RunID() = %q, want %q", err.RunID(), runID)
	}
}

func TestRunIDPreservedOnWrap(t *testing.T) {
	inner := New("inner").WithRunID("run-1")
	wrapped := Wrap(inner, "outer")

	if wrapped.RunID() != "run-1" {
		t.Errorf("RunID() = %q, want %q", wrapped.RunID(), "run-1")
	}
}

func TestString(t *testing.T) {
	err := New("test error").
		WithCode(CodeIncludeCycle).
		WithOperation("engine.Expand").
		WithDetail("name", "a.pbrt")

	s := err.String()

	for _, want := range []string{
		"Error: test error",
		"Code: INCLUDE_CYCLE",
		"Operation: engine.Expand",
		"name=a.pbrt",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("test error").
		WithCode(CodeIOError).
		WithDetail("path", "/tmp/scene.pbrt")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if decoded["message"] != "test error" {
		t.Errorf("message = %v, want \"test error\"", decoded["message"])
	}

	if decoded["code"] != "IO_ERROR" {
		t.Errorf("code = %v, want \"IO_ERROR\"", decoded["code"])
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New("e").WithCode(CodeMalformedLiteral), CodeMalformedLiteral, true},
		{"different code", New("e").WithCode(CodeMalformedLiteral), CodeUnexpectedEOF, false},
		{"standard error", errors.New("e"), CodeMalformedLiteral, false},
		{"nil error", nil, CodeMalformedLiteral, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New("e").WithCode(CodeConfigError)); got != CodeConfigError {
		t.Errorf("GetCode() = %v, want %v", got, CodeConfigError)
	}

	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnknown)
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(New("e").WithSeverity(SeverityHigh)); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}

	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityMedium)
	}
}
