package server

import "go.uber.org/zap"

// NewLogger builds the process logger and installs it as zap's global one
func NewLogger(prod bool) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if prod {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
