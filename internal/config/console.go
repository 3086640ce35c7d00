package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// ConsoleConfig configures the terminal admin console.
type ConsoleConfig struct {
	APIURL      string
	SessionFile string
	Timeout     time.Duration
	LogLevel    string
}

func LoadConsole() (*ConsoleConfig, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("CONSOLE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONSOLE_TIMEOUT: %w", err)
	}

	sessionFile := getEnv("CONSOLE_SESSION_FILE", "")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		sessionFile = filepath.Join(home, ".salary-console", "session.json")
	}

	return &ConsoleConfig{
		APIURL:      getEnv("CONSOLE_API_URL", "http://localhost:8080/api"),
		SessionFile: sessionFile,
		Timeout:     timeout,
		LogLevel:    getEnv("CONSOLE_LOG_LEVEL", "warn"),
	}, nil
}
