package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/serendipious/solGPT/internal/model"
)

const sampleBookmarksJSON = `{
  "roots": {
    "bookmark_bar": {
      "children": [
        {"name": "Go Packages", "url": "https://pkg.go.dev", "type": "url"},
        {"name": "Empty Folder", "type": "folder"},
        {"name": "Hacker News", "url": "https://news.ycombinator.com", "type": "url"}
      ]
    },
    "other": {"children": [{"name": "Hidden", "url": "https://example.com"}]}
  }
}`

func TestReadBookmarksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	if err := os.WriteFile(path, []byte(sampleBookmarksJSON), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got := ReadBookmarksFile(path)
	if len(got) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d: %#v", len(got), got)
	}
	if got[0].Title != "Go Packages" || got[0].URL != "https://pkg.go.dev" {
		t.Errorf("unexpected first bookmark: %#v", got[0])
	}
	if got[1].Title != "Hacker News" {
		t.Errorf("folder entry should be skipped, got %#v", got[1])
	}
}

func TestReadBookmarksFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")
	if got := ReadBookmarksFile(path); got != nil {
		t.Fatalf("missing file should yield nil, got %#v", got)
	}
}

func TestReadBookmarksFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if got := ReadBookmarksFile(path); got != nil {
		t.Fatalf("unparsable file should yield nil, got %#v", got)
	}
}

func TestBookmarkItems(t *testing.T) {
	items := BookmarkItems([]model.Bookmark{
		{Title: "Docs", URL: "https://docs.example.com"},
	}, "🌐")
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	item := items[0]
	if item.Kind != model.KindBookmark {
		t.Errorf("kind = %q, want %q", item.Kind, model.KindBookmark)
	}
	if item.Icon != "🌐" {
		t.Errorf("icon = %q, want browser icon", item.Icon)
	}
	action, ok := item.Action.(model.OpenURL)
	if !ok {
		t.Fatalf("action = %T, want model.OpenURL", item.Action)
	}
	if action.URL != "https://docs.example.com" {
		t.Errorf("action url = %q", action.URL)
	}
}
