package logger

import "log/slog"

// Additional levels extending slog's built-in range. Noise sits below Debug
// for high-volume tracing; Silent sits above Error and suppresses all
// output when used as a handler threshold.
const (
	LevelNoise  = slog.Level(-8)
	LevelSilent = slog.Level(12)
)

// levelLabel renders a level the way the console handler prints it.
func levelLabel(l slog.Level) string {
	switch {
	case l < slog.LevelDebug:
		return "NOISE"
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	case l < LevelSilent:
		return "ERROR"
	default:
		return "SILENT"
	}
}

// levelColor is the default color per level: cyan for the chatty levels,
// yellow for warnings, red for errors.
func levelColor(l slog.Level) Color {
	switch {
	case l < slog.LevelInfo:
		return ColorCyan
	case l < slog.LevelWarn:
		return ""
	case l < slog.LevelError:
		return ColorYellow
	default:
		return ColorRed
	}
}

// ParseLevel maps a level name to its slog value. Unknown names fall back
// to Info, mirroring the defensive level setter of the original logger
// rather than failing startup over a typo.
func ParseLevel(name string) slog.Level {
	switch name {
	case "noise":
		return LevelNoise
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warning", "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "silent":
		return LevelSilent
	default:
		return slog.LevelInfo
	}
}
