package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serendipious/solGPT/internal/sources"
	"github.com/serendipious/solGPT/internal/storage"
	"github.com/serendipious/solGPT/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sol failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := storage.MigrateUp(store.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	deps := update.Collaborators{
		Github: sources.NewGitHubClient(),
		Opener: sources.ExecOpener{},
	}
	if cfg.DisableFileSearch {
		deps.Files = sources.NewNoopFileSearcher()
	}

	m := update.NewModelWithConfig(cfg, store, deps)

	home, err := os.UserHomeDir()
	if err == nil {
		var lister sources.AppLister = sources.DesktopAppLister{Home: home}
		apps, listErr := lister.Apps(context.Background())
		if listErr != nil {
			apps = nil
		}
		m.SetCatalogs(sources.ApplicationItems(apps), sources.BuiltinCatalog(home))
		m.RefreshBookmarks(home)
	}

	program := tea.NewProgram(m)
	_, err = program.Run()
	return err
}
