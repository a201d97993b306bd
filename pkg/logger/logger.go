package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Development mode gets human-readable
// output and full error detail; production logs structured JSON and
// never echoes internal errors to clients.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
