package sources

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/serendipious/solGPT/internal/model"
)

// chromiumBookmarks mirrors the slice of the Chromium bookmarks file we
// read: the bookmark-bar children.
type chromiumBookmarks struct {
	Roots struct {
		BookmarkBar struct {
			Children []struct {
				Name string `json:"name"`
				URL  string `json:"url"`
			} `json:"children"`
		} `json:"bookmark_bar"`
	} `json:"roots"`
}

// ReadBookmarksFile extracts bookmark-bar entries from a Chromium-format
// profile file. A missing or unreadable file is treated as an empty result,
// never an error.
func ReadBookmarksFile(path string) []model.Bookmark {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var parsed chromiumBookmarks
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}
	children := parsed.Roots.BookmarkBar.Children
	out := make([]model.Bookmark, 0, len(children))
	for _, child := range children {
		if child.URL == "" {
			continue
		}
		out = append(out, model.Bookmark{Title: child.Name, URL: child.URL})
	}
	return out
}

// BookmarkItems maps bookmarks from one browser to palette items; the icon
// tags the originating browser.
func BookmarkItems(bookmarks []model.Bookmark, icon string) []model.Item {
	items := make([]model.Item, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		items = append(items, model.Item{
			Name:   bookmark.Title,
			Kind:   model.KindBookmark,
			Icon:   icon,
			Action: model.OpenURL{URL: bookmark.URL},
		})
	}
	return items
}

// ChromeBookmarksPath and BraveBookmarksPath locate the default profile
// bookmark files relative to a home directory.
func ChromeBookmarksPath(home string) string {
	return fmt.Sprintf("%s/.config/google-chrome/Default/Bookmarks", home)
}

func BraveBookmarksPath(home string) string {
	return fmt.Sprintf("%s/.config/BraveSoftware/Brave-Browser/Default/Bookmarks", home)
}
