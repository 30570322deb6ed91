// Package logger builds log/slog loggers with functional options.
//
//	log := logger.New(
//	    logger.WithDevelopment("signup"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
// NewFromEnv reads LOG_LEVEL (debug, info, warn, error) and LOG_FORMAT
// (json, text) through package config. Attribute helpers such as Group and
// Error keep keys consistent across call sites.
package logger
