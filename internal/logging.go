package internal

import "go.uber.org/zap"

// NewLogger builds the process logger for the given environment
func NewLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
