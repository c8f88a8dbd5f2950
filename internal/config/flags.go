package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s/-server server base URL of the recipe API
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-state-dir directory holding the credential entries
//	-cache cache database file path
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverBaseURL string
	var requestTimeout time.Duration
	var stateDir string
	var cacheDSN string
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&serverBaseURL, "s", "", "Recipe API base URL")
	flag.StringVar(&serverBaseURL, "server", "", "Recipe API base URL (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&stateDir, "state-dir", "", "Credential state directory")
	flag.StringVar(&cacheDSN, "cache", "", "Offline cache database file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			BaseURL:        serverBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			StateDir: stateDir,
			CacheDSN: cacheDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
}
