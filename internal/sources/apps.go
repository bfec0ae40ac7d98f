// Package sources normalizes heterogeneous inputs (installed applications,
// browser bookmarks, remote repository search, native file search) into the
// common item shape the composer consumes. The OS-level collaborators behind
// these adapters are assumed correct; contracts here stay narrow.
package sources

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/serendipious/solGPT/internal/model"
)

// AppLister enumerates installed applications. Implementations are
// platform-specific collaborators.
type AppLister interface {
	Apps(ctx context.Context) ([]model.AppEntry, error)
}

// ApplicationItems maps collaborator app entries to palette items. Entries
// may arrive as file:// URLs; they are normalized to plain paths.
func ApplicationItems(entries []model.AppEntry) []model.Item {
	items := make([]model.Item, 0, len(entries))
	for _, entry := range entries {
		path := entry.Path
		if strings.HasPrefix(path, "file://") {
			trimmed := strings.TrimPrefix(path, "file://")
			if unescaped, err := url.PathUnescape(trimmed); err == nil {
				path = unescaped
			} else {
				path = trimmed
			}
		}
		items = append(items, model.Item{
			Name:   entry.Name,
			Kind:   model.KindApplication,
			Path:   path,
			Action: model.OpenPath{Path: path},
		})
	}
	return items
}

// NoopAppLister is used when no application enumerator is wired.
type NoopAppLister struct{}

func (NoopAppLister) Apps(context.Context) ([]model.AppEntry, error) { return nil, nil }

// DesktopAppLister enumerates installed applications from the platform's
// conventional locations: .desktop entries on Linux, .app bundles on macOS.
type DesktopAppLister struct {
	Home string
}

func (l DesktopAppLister) Apps(ctx context.Context) ([]model.AppEntry, error) {
	if runtime.GOOS == "darwin" {
		return listAppBundles("/Applications")
	}
	dirs := []string{"/usr/share/applications", "/usr/local/share/applications"}
	if l.Home != "" {
		dirs = append(dirs, filepath.Join(l.Home, ".local/share/applications"))
	}
	var out []model.AppEntry
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, listDesktopEntries(dir)...)
	}
	return out, nil
}

func listDesktopEntries(dir string) []model.AppEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []model.AppEntry
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".desktop") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		name := desktopEntryName(path)
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), ".desktop")
		}
		out = append(out, model.AppEntry{Name: name, Path: path})
	}
	return out
}

// desktopEntryName pulls the first Name= key out of a .desktop file.
func desktopEntryName(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if value, ok := strings.CutPrefix(line, "Name="); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func listAppBundles(dir string) ([]model.AppEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}
	var out []model.AppEntry
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".app") {
			continue
		}
		out = append(out, model.AppEntry{
			Name: strings.TrimSuffix(entry.Name(), ".app"),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return out, nil
}
