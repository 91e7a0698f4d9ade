// Package errors provides custom error types for cc-mcp-admin.
// These errors enable programmatic error checking and consistent
// reporting across the CLI without stringly-typed comparisons.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for cc-mcp-admin
var (
	// ErrNotFound indicates that a requested server name has no records anywhere
	ErrNotFound = errors.New("not found")

	// ErrAlreadyEnabled indicates the server is already effective in the current project
	ErrAlreadyEnabled = errors.New("already enabled")

	// ErrAmbiguousSource indicates multiple diverging configurations exist and no hint was given
	ErrAmbiguousSource = errors.New("ambiguous source")

	// ErrNoMatchingSource indicates no source project matched the supplied hint
	ErrNoMatchingSource = errors.New("no matching source")

	// ErrOverrideNotRemovable indicates the record lives in a read-only per-project file
	ErrOverrideNotRemovable = errors.New("override not removable")

	// ErrRegistryUnreadable indicates the global registry file is missing or unparseable
	ErrRegistryUnreadable = errors.New("registry unreadable")

	// ErrRegistryUnwritable indicates the global registry file could not be written
	ErrRegistryUnwritable = errors.New("registry unwritable")
)

// NotFoundError represents a lookup for a server name that no project declares
type NotFoundError struct {
	Name string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("MCP server %q not found in any project", e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(name string) *NotFoundError {
	return &NotFoundError{Name: name}
}

// AmbiguousSourceError is returned when a server has multiple diverging
// configurations and the caller supplied no hint to pick one.
// Sources lists every candidate source project so the caller can retry
// with a --from hint.
type AmbiguousSourceError struct {
	Name    string
	Sources []string
}

// Error implements the error interface
func (e *AmbiguousSourceError) Error() string {
	return fmt.Sprintf("multiple configurations found for %q (candidates: %s)",
		e.Name, strings.Join(e.Sources, ", "))
}

// Is implements errors.Is support
func (e *AmbiguousSourceError) Is(target error) bool {
	return target == ErrAmbiguousSource
}

// NewAmbiguousSourceError creates a new AmbiguousSourceError
func NewAmbiguousSourceError(name string, sources []string) *AmbiguousSourceError {
	return &AmbiguousSourceError{Name: name, Sources: sources}
}

// NoMatchingSourceError is returned when a hint matched none of the
// available source projects. Sources lists what was available.
type NoMatchingSourceError struct {
	Name    string
	Hint    string
	Sources []string
}

// Error implements the error interface
func (e *NoMatchingSourceError) Error() string {
	return fmt.Sprintf("no configuration for %q matches %q (available: %s)",
		e.Name, e.Hint, strings.Join(e.Sources, ", "))
}

// Is implements errors.Is support
func (e *NoMatchingSourceError) Is(target error) bool {
	return target == ErrNoMatchingSource
}

// NewNoMatchingSourceError creates a new NoMatchingSourceError
func NewNoMatchingSourceError(name, hint string, sources []string) *NoMatchingSourceError {
	return &NoMatchingSourceError{Name: name, Hint: hint, Sources: sources}
}

// ParseError represents an error when parsing a configuration document
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations against ordinary
// files (override files, the home directory lookup). It carries no
// registry sentinel: a broken per-project file must never classify as a
// registry failure.
type IOError struct {
	Operation string // "read", "write", "stat"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// RegistryError represents a failure against the global registry file,
// the one source that is also the mutation target and therefore fatal to
// the invocation.
type RegistryError struct {
	Operation string // "read", "parse", "write"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	return fmt.Sprintf("global registry %s: failed to %s: %v", e.Path, e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support, mapping onto the registry sentinels so
// callers can classify failures without inspecting the operation string.
func (e *RegistryError) Is(target error) bool {
	if e.Operation == "write" {
		return target == ErrRegistryUnwritable
	}
	return target == ErrRegistryUnreadable
}

// NewRegistryError creates a new RegistryError
func NewRegistryError(operation, path string, err error) *RegistryError {
	return &RegistryError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyEnabled checks if an error is an already enabled error
func IsAlreadyEnabled(err error) bool {
	return errors.Is(err, ErrAlreadyEnabled)
}

// IsResolverFailure checks whether an error came out of source resolution,
// either ambiguity or a hint that matched nothing.
func IsResolverFailure(err error) bool {
	return errors.Is(err, ErrAmbiguousSource) || errors.Is(err, ErrNoMatchingSource)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapRegistry wraps an error as a RegistryError
func WrapRegistry(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewRegistryError(operation, path, err)
}
