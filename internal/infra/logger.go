// README: zap logger construction.
package infra

import "go.uber.org/zap"

// NewLogger builds the process logger. mode "dev" gets the human-readable
// development encoder; anything else gets production JSON.
func NewLogger(mode string) (*zap.Logger, error) {
	if mode == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
