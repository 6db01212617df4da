// Package bridge implements the command bridge between the Basalt web
// view and the native host. The frontend issues named requests with an
// argument payload; the host resolves the name against a registry built
// at startup and returns a typed response.
package bridge

import (
	"github.com/npiesco/basalt/internal/appmeta"
	"github.com/npiesco/basalt/internal/settings"
)

// Args is the argument payload of one invocation.
type Args map[string]any

// Handler implements one named command. Handlers read the host context
// but never mutate it; errors they return are surfaced to the caller as
// error responses.
type Handler func(host *Host, args Args) (any, error)

// Host is the process-wide context handed to every handler. All fields
// are set once at bootstrap and treated as read-only afterwards.
type Host struct {
	Meta     appmeta.Metadata
	Settings *settings.Store
}

// String returns an optional string argument, or fallback when absent.
func (a Args) String(key, fallback string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return fallback
}

// Request is one frontend-to-host invocation.
type Request struct {
	// ID correlates the response with the request. The dispatcher
	// assigns one when the frontend omits it.
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Args Args   `json:"args,omitempty"`
}

// Response is the result delivered back across the web-view boundary:
// either a success value or an error description, never both.
type Response struct {
	ID    string `json:"id,omitempty"`
	OK    bool   `json:"ok"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}
