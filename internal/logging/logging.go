// Package logging builds the zap logger shared by the dirdoc commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "dirdoc"

// New returns a logger writing to stderr. Verbose mode uses zap's development
// config (debug level, caller info); otherwise only warnings and errors are
// emitted, in console form so they read naturally next to progress output.
func New(verbose bool, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.InitialFields = map[string]interface{}{
			"appName":    appName,
			"appVersion": appVersion,
		}
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.TimeKey = ""
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
		cfg.Sampling = nil
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	return logger, nil
}
