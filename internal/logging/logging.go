// Package logging builds the shared zap logger for the CLI.
package logging

import (
	"go.uber.org/zap"
)

// New returns a console-encoded sugared logger. With debug enabled the
// development config is used and the level drops to DEBUG; otherwise only
// warnings and above are emitted so tool output stays clean on stdout.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
