package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup builds the global logger. Debug selects zap's development config
// (console output at debug level); otherwise the production config is used.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

// Get returns the global logger, falling back to a production logger when
// Setup has not run yet (for example when flag parsing failed).
func Get() *zap.Logger {
	if Logger == nil {
		logger, err := zap.NewProduction()
		if err != nil {
			return zap.NewNop()
		}
		Logger = logger
	}
	return Logger
}
