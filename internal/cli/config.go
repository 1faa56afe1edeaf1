package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	DataDir string
	Output  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		DataDir: getEnvOrDefault("COMMONS_DATA_DIR", defaultDataDir()),
		Output:  "text",
		Verbose: false,
	}
}

// DatabasePath returns the path of the SQLite database inside the data dir
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "commons.db")
}

// EnsureDataDir creates the data directory if it does not exist
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0700)
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".commons"
	}
	return filepath.Join(base, "commons")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
