package config

import "os"

// Config holds the environment-derived settings for the HTTP transport and
// the batch generator.
type Config struct {
	Port        string
	PuzzlesFile string
}

// Load reads configuration from environment variables, falling back to
// sane defaults for local development.
func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		PuzzlesFile: getEnv("LIGHTUP_PUZZLES_FILE", "puzzles.json"),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
