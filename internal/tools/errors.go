package tools

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tools package.
var (
	// ErrToolNotFound is returned when a requested tool is not registered.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolAlreadyExists is returned when attempting to register a tool
	// with a name that is already in use.
	ErrToolAlreadyExists = errors.New("tool already exists")

	// ErrInvalidTool is returned for a nil tool, an empty name or a
	// parameter schema that cannot be serialized.
	ErrInvalidTool = errors.New("invalid tool")
)

// ToolNotFoundError names the missing tool.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool not found: %s", e.Name)
}

func (e *ToolNotFoundError) Is(target error) bool {
	return target == ErrToolNotFound
}

// ToolAlreadyExistsError names the duplicate tool.
type ToolAlreadyExistsError struct {
	Name string
}

func (e *ToolAlreadyExistsError) Error() string {
	return fmt.Sprintf("tool already exists: %s", e.Name)
}

func (e *ToolAlreadyExistsError) Is(target error) bool {
	return target == ErrToolAlreadyExists
}

// InvalidToolError describes why a tool was rejected.
type InvalidToolError struct {
	Tool    string
	Message string
	Cause   error
}

func (e *InvalidToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid tool %q: %s: %v", e.Tool, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid tool %q: %s", e.Tool, e.Message)
}

// Is allows errors.Is to match against ErrInvalidTool.
func (e *InvalidToolError) Is(target error) bool {
	return target == ErrInvalidTool
}

// Unwrap returns the underlying cause, if any.
func (e *InvalidToolError) Unwrap() error {
	return e.Cause
}

// NewToolNotFoundError creates a ToolNotFoundError for the given tool name.
func NewToolNotFoundError(name string) error {
	return &ToolNotFoundError{Name: name}
}

// NewToolAlreadyExistsError creates a ToolAlreadyExistsError for the given tool name.
func NewToolAlreadyExistsError(name string) error {
	return &ToolAlreadyExistsError{Name: name}
}

// NewInvalidToolError creates an InvalidToolError with the given details.
func NewInvalidToolError(tool, message string, cause error) error {
	return &InvalidToolError{Tool: tool, Message: message, Cause: cause}
}
