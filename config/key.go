package config

const (
	LogLevel   = "log.level"
	LogJSON    = "log.json"
	LogBackend = "log.backend"
	Timing     = "timing"
)

const (
	BackendConsole = "console"
	BackendLogrus  = "logrus"
)

// Default holds the factory value of every key.
var Default = map[string]any{
	LogLevel:   "info",
	LogJSON:    false,
	LogBackend: BackendConsole,
	Timing:     false,
}
