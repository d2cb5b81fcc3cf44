package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:         "http://127.0.0.1/movies.json",
			HTTPTimeout: 5 * time.Second,
			UserAgent:   "reel-test/1.0",
			AllowLocal:  true,
		},
		Database: DatabaseConfig{
			Path:    ":memory:",
			Timeout: 1 * time.Second,
		},
		UI:   defaultConfig().UI,
		Keys: defaultConfig().Keys,
		Log:  LogConfig{Level: "off"},
	}
}
