// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a diagnostic message with optional key/value pairs.
	Debug(msg string, args ...any)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
