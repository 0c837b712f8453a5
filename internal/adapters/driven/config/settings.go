package config

import (
	"os"
	"runtime"
)

// EnvESPath overrides the configured executable location when set.
const EnvESPath = "ESQ_ES_PATH"

// Settings holds every knob the tool reads at startup.
type Settings struct {
	// ESPath is the location of the es.exe command-line client. Empty
	// means fall back to the platform default.
	ESPath string `toml:"es_path"`

	// DefaultTimeoutMS bounds each engine invocation that does not carry
	// its own timeout, in milliseconds.
	DefaultTimeoutMS int `toml:"default_timeout_ms"`

	// DefaultMaxResults caps result sets when a request does not set its
	// own limit. Zero means no cap.
	DefaultMaxResults int `toml:"default_max_results"`

	// MCP configures the tool-calling server.
	MCP MCPSettings `toml:"mcp"`
}

// MCPSettings throttles tool calls so a chatty model cannot hammer the
// search engine.
type MCPSettings struct {
	// RatePerSecond is the sustained tool-call rate. Zero or negative
	// disables throttling.
	RatePerSecond float64 `toml:"rate_per_second"`

	// RateBurst is how many calls may land back to back.
	RateBurst int `toml:"rate_burst"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		ESPath:           "",
		DefaultTimeoutMS: 5000,
		MCP: MCPSettings{
			RatePerSecond: 5,
			RateBurst:     10,
		},
	}
}

// DefaultESPath returns the conventional install location of es.exe for
// the current platform. On non-Windows systems this is the WSL view of
// the Windows install, since the engine itself only runs on Windows.
func DefaultESPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\Everything\es.exe`
	}
	return "/mnt/c/Program Files/Everything/es.exe"
}

// ResolveESPath picks the executable location from the highest-priority
// source that is set: command-line flag, then ESQ_ES_PATH, then the config
// file, then the platform default.
func ResolveESPath(flagValue string, settings Settings) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvESPath); env != "" {
		return env
	}
	if settings.ESPath != "" {
		return settings.ESPath
	}
	return DefaultESPath()
}
