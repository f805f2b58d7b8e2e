package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// LevelFor maps a decision onto the log level its telemetry line is recorded at.
// Units that fail open for lack of information are warnings; ordinary staleness is informational.
func LevelFor(d Decision) LogLevel {
	switch d.Reason {
	case ReasonFingerprintWriteFailed, ReasonOutputUnreadable:
		return LogLevelWarn
	case ReasonUpToDate:
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// RunSummary counts the units of one evaluation by outcome.
type RunSummary struct {
	Total  int
	Cached int
	Failed int
}

// Stale returns how many units need a rebuild.
func (s RunSummary) Stale() int {
	return s.Total - s.Cached - s.Failed
}
