package update

import "testing"

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("SOL_DB_PATH", "/tmp/sol-test.db")
	t.Setenv("SOL_GITHUB_TOKEN", "tok")
	t.Setenv("SOL_DEBOUNCE_MILLIS", "250")
	t.Setenv("SOL_DISABLE_CALENDAR", "yes")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DatabasePath != "/tmp/sol-test.db" {
		t.Errorf("db path = %q", cfg.DatabasePath)
	}
	if cfg.GithubToken != "tok" {
		t.Errorf("token = %q", cfg.GithubToken)
	}
	if cfg.DebounceMillis != 250 {
		t.Errorf("debounce = %d", cfg.DebounceMillis)
	}
	if !cfg.DisableCalendar {
		t.Error("calendar disable flag ignored")
	}
}

func TestRuntimeConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("SOL_DEBOUNCE_MILLIS", "soon")
	t.Setenv("SOL_DISABLE_FILE_SEARCH", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DebounceMillis != 500 {
		t.Errorf("debounce should keep default, got %d", cfg.DebounceMillis)
	}
	if cfg.DisableFileSearch {
		t.Error("unparsable bool should keep default")
	}
}
