package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	PlayerID  string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("GAMBOT_SERVER", "http://localhost:8080"),
		PlayerID:  os.Getenv("GAMBOT_PLAYER"),
		Output:    "text",
	}
}

// RequirePlayer returns the configured player identity or an error message
func (c *Config) RequirePlayer() (string, bool) {
	return c.PlayerID, c.PlayerID != ""
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
