// Package logger builds configured slog.Logger instances with an emphasis
// on terminal-friendly output.
//
// Besides slog's standard JSON and text handlers, the package ships a
// ConsoleHandler that renders colorized single-line records with optional
// timestamps, caller info, and a per-logger signature tag. Two extra levels
// extend slog's range: LevelNoise below Debug for high-volume tracing and
// LevelSilent above Error to mute a logger entirely.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithSignature("scanner"),
//	    logger.WithSource(),
//	)
//	log.Info("probing", "host", host)
//
// NewFromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SIGNATURE, LOG_NO_COLOR and
// LOG_SOURCE from the environment via pkg/config.
package logger
