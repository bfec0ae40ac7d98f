package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DatabasePath      string
	GithubToken       string
	DebounceMillis    int
	DisableFileSearch bool
	DisableCalendar   bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:   defaultDatabasePath(),
		DebounceMillis: 500,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("SOL_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("SOL_GITHUB_TOKEN")); v != "" {
		cfg.GithubToken = v
	}
	if v, ok := getEnvInt("SOL_DEBOUNCE_MILLIS"); ok && v > 0 {
		cfg.DebounceMillis = v
	}
	if v, ok := getEnvBool("SOL_DISABLE_FILE_SEARCH"); ok {
		cfg.DisableFileSearch = v
	}
	if v, ok := getEnvBool("SOL_DISABLE_CALENDAR"); ok {
		cfg.DisableCalendar = v
	}
	return cfg
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sol.db"
	}
	return home + "/.local/share/sol/sol.db"
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
