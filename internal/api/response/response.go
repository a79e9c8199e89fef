// Package response implements the uniform success/failure envelope every
// endpoint answers with. The encoding has no branching of its own; the same
// outcome kind always yields the same shape.
package response

import "github.com/labstack/echo/v4"

// Envelope is the wire shape of every response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK writes a success envelope with the given status and payload.
func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}
