package ethrpc

import "fmt"

// ArgumentError reports a missing or malformed argument detected while
// shaping a method call. It is always raised before any transport
// interaction, so a caller seeing one knows nothing was sent.
type ArgumentError struct {
	Method string // client-style method name; empty when raised by a bare formatter
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Method == "" {
		return "ethrpc: " + e.Reason
	}
	return fmt.Sprintf("ethrpc: %s: %s", e.Method, e.Reason)
}

func argErrorf(method, format string, args ...any) error {
	return &ArgumentError{Method: method, Reason: fmt.Sprintf(format, args...)}
}
