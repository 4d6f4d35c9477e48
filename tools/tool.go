// Package tools exposes support operations as named, schema-described tools
// that drivers can list and invoke.
package tools

import (
	"context"
	"errors"
)

var (
	// ErrUnknownTool indicates no tool is registered under the given name.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrMissingParam indicates a required parameter was not supplied.
	ErrMissingParam = errors.New("missing required parameter")
)

// Tool is one invocable operation.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
	Handler     Handler        `json:"-"`
}

// Handler executes a tool and returns the result
type Handler func(ctx context.Context, input Input) (any, error)

// Definition returns the tool definition without the handler
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ToDefinition converts a Tool to a Definition
func (t *Tool) ToDefinition() Definition {
	return Definition{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// Required lists the names of required parameters.
func (t *Tool) Required() []string {
	req, _ := t.Parameters["required"].([]string)
	return req
}

// Input is the decoded parameter object of a tool call.
type Input map[string]any

// String returns a string parameter, or "" when absent or not a string.
func (in Input) String(key string) string {
	if v, ok := in[key].(string); ok {
		return v
	}
	return ""
}

// Int returns an integer parameter. JSON numbers arrive as float64.
func (in Input) Int(key string) int {
	switch n := in[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// Has reports whether key is present and not an empty string.
func (in Input) Has(key string) bool {
	v, ok := in[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return s != ""
	}
	return true
}
