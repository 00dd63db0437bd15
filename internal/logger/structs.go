package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"          json:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter" json:"useConsoleWriter"`
}

// LogFile implements a file based logger with one rolling file per level group.
type LogFile struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path"    json:"path"`

	ErrorLog        string `toml:"error"           json:"error"`
	ErrorMaxSize    int    `toml:"errorMaxSize"    json:"errorMaxSize"`
	ErrorMaxBackups int    `toml:"errorMaxBackups" json:"errorMaxBackups"`
	ErrorMaxAge     int    `toml:"errorMaxAge"     json:"errorMaxAge"`

	InfoLog        string `toml:"info"           json:"info"`
	InfoMaxSize    int    `toml:"infoMaxSize"    json:"infoMaxSize"`
	InfoMaxBackups int    `toml:"infoMaxBackups" json:"infoMaxBackups"`
	InfoMaxAge     int    `toml:"infoMaxAge"     json:"infoMaxAge"`

	TraceLog        string `toml:"trace"           json:"trace"`
	TraceMaxSize    int    `toml:"traceMaxSize"    json:"traceMaxSize"`
	TraceMaxBackups int    `toml:"traceMaxBackups" json:"traceMaxBackups"`
	TraceMaxAge     int    `toml:"traceMaxAge"     json:"traceMaxAge"`

	WarnLog        string `toml:"warn"           json:"warn"`
	WarnMaxSize    int    `toml:"warnMaxSize"    json:"warnMaxSize"`
	WarnMaxBackups int    `toml:"warnMaxBackups" json:"warnMaxBackups"`
	WarnMaxAge     int    `toml:"warnMaxAge"     json:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `toml:"logLevel"     json:"logLevel"` // trace, debug, info, warn, error.
	ReportCaller bool   `toml:"reportCaller" json:"reportCaller"`

	AppName     string `toml:"appName"     json:"appName"`
	ServiceName string `toml:"serviceName" json:"serviceName"`

	// Console is where the CLI logs by default. Logs go to stderr so generated strings
	// on stdout stay clean.
	Console Console `toml:"console" json:"console"`

	File LogFile `toml:"file" json:"file"`
}
