package config

// Level is the log verbosity carried by [Config].
//
// The zero value, LevelUnset, marks a builder field that has not been
// populated and is never present in a built [Config].
type Level uint8

const (
	LevelUnset Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = map[Level]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelTrace: "trace",
}

// String returns the lowercase level name, or "unset" for [LevelUnset] and
// unknown values.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unset"
}

// levelFromVerbosity maps the number of -v occurrences to a level:
// none is Warn, one is Info, two or more is Debug.
func levelFromVerbosity(occurrences int) Level {
	switch {
	case occurrences <= 0:
		return LevelWarn
	case occurrences == 1:
		return LevelInfo
	default:
		return LevelDebug
	}
}
