// Package logger provides structured logging utilities built on Go's standard slog package:
// a logger factory with environment presets and a set of attribute helpers.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/observer/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty values, which slog drops, so they can
// be passed without nil checks:
//
//	log.Debug("observer attached",
//		logger.SubjectID(subject.ID()),
//		logger.ObserverID(o.ID()),
//	)
//
//	log.Error("notify failed",
//		logger.Error(err),
//		logger.Component("window"),
//		logger.Duration(time.Since(start)),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
