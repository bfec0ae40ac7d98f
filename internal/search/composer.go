package search

import (
	"regexp"
	"strings"

	"github.com/serendipious/solGPT/internal/model"
)

// pathDisplayMax is the longest file path rendered verbatim; longer paths
// keep the trailing segment behind an ellipsis marker. Truncation is by
// character count, not path separators.
const pathDisplayMax = 60

// urlPattern is deliberately lenient: a dot-delimited host-like token,
// optionally with scheme, port, and path.
var urlPattern = regexp.MustCompile(`^(?:https?://)?(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}(?::\d+)?(?:/\S*)?$`)

// Query carries everything the composer merges for one keystroke.
type Query struct {
	Text            string
	Apps            []model.Item
	Static          []model.Item
	Custom          []model.Item
	BookmarkSets    [][]model.Item
	Fallback        []model.Item
	FileResults     []model.FileDescription
	RepoResults     []model.RepoResult
	RepoSearch      bool
	TemporaryResult string
	Favorites       []string
	Bias            func(string) int
}

// Compose merges all sources into one ordered result list. With a non-empty
// query the tiers are, strictly in order: the open-as-URL action, the
// temporary computed result, fuzzy catalog matches, the fixed fallback
// actions, file-search results, then repository results when enabled. Tiers
// are concatenated without cross-tier de-duplication: an item surfacing both
// as a fuzzy match and a fallback carries different actions on purpose.
// With an empty query the favorites projection is returned instead.
func Compose(q Query) []model.Item {
	if strings.TrimSpace(q.Text) == "" {
		return FavoritesProjection(q.Favorites, q.catalog())
	}

	out := make([]model.Item, 0, 16)

	if urlPattern.MatchString(q.Text) {
		out = append(out, openURLItem(q.Text))
	}

	if q.TemporaryResult != "" {
		out = append(out, model.Item{
			Name: q.TemporaryResult,
			Kind: model.KindTemporary,
		})
	}

	out = append(out, Match(q.Text, q.catalog(), q.Bias)...)

	out = append(out, q.Fallback...)

	for _, file := range q.FileResults {
		out = append(out, fileItem(file))
	}

	if q.RepoSearch {
		for _, repo := range q.RepoResults {
			out = append(out, repoItem(repo))
		}
	}

	return out
}

// FavoritesProjection resolves saved favorite names against the catalog, in
// stored order, silently dropping names no longer resolvable.
func FavoritesProjection(favorites []string, catalog []model.Item) []model.Item {
	out := make([]model.Item, 0, len(favorites))
	for _, name := range favorites {
		for _, item := range catalog {
			if item.Name == name {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// catalog is every favoritable item: apps, static actions, custom shortcuts
// and browser bookmarks. The favorites projection resolves against the same
// set the fuzzy tier searches, so anything favorited stays reachable.
func (q Query) catalog() []model.Item {
	catalog := make([]model.Item, 0, len(q.Apps)+len(q.Static)+len(q.Custom))
	catalog = append(catalog, q.Apps...)
	catalog = append(catalog, q.Static...)
	catalog = append(catalog, q.Custom...)
	for _, set := range q.BookmarkSets {
		catalog = append(catalog, set...)
	}
	return catalog
}

func openURLItem(query string) model.Item {
	url := query
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	return model.Item{
		Name:   "Open URL",
		Kind:   model.KindConfiguration,
		Icon:   "🌎",
		Action: model.OpenURL{URL: url},
	}
}

func fileItem(file model.FileDescription) model.Item {
	item := model.Item{
		Name:     file.Filename,
		Subtitle: ShortenPath(file.Path),
		Kind:     model.KindCustom,
		Path:     file.Path,
		Action:   model.OpenPath{Path: file.Path},
	}
	if file.Kind != "Folder" {
		item.Secondary = model.OpenPath{Path: file.Location}
	}
	return item
}

func repoItem(repo model.RepoResult) model.Item {
	return model.Item{
		Name:     repo.FullName,
		Subtitle: repo.Description,
		Kind:     model.KindApplication,
		Action:   model.OpenURL{URL: repo.URL},
	}
}

// ShortenPath keeps the trailing pathDisplayMax characters of an over-long
// path, prefixed with an ellipsis marker.
func ShortenPath(path string) string {
	if len(path) <= pathDisplayMax {
		return path
	}
	return "..." + path[len(path)-pathDisplayMax:]
}
