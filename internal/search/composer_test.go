package search

import (
	"strings"
	"testing"

	"github.com/serendipious/solGPT/internal/model"
)

func fallbackItems() []model.Item {
	return []model.Item{
		{Name: "Google Search", Kind: model.KindConfiguration, Action: model.WebSearch{}},
		{Name: "Google Translate", Kind: model.KindConfiguration, Action: model.TranslateQuery{}, PreventClose: true},
		{Name: "Google Maps", Kind: model.KindConfiguration, Action: model.FocusWidget{Widget: model.WidgetMap}, PreventClose: true},
	}
}

// tierOf maps a composed item back to its precedence tier for the ordering
// property check.
func tierOf(item model.Item, q Query) int {
	switch {
	case item.Name == "Open URL" && item.Kind == model.KindConfiguration:
		return 1
	case item.Kind == model.KindTemporary:
		return 2
	case item.Kind == model.KindCustom && item.Path != "":
		return 5 // file results carry their path
	case item.Kind == model.KindApplication && q.RepoSearch && strings.Contains(item.Name, "/"):
		return 6
	default:
		for _, fb := range q.Fallback {
			if fb.Name == item.Name && fb.Action == item.Action {
				return 4
			}
		}
		return 3
	}
}

func TestComposeTierOrderProperty(t *testing.T) {
	q := Query{
		Text: "docs.example.com",
		Apps: []model.Item{
			{Name: "Docs Example Companion", Kind: model.KindApplication},
		},
		Static:          []model.Item{{Name: "Example docs shortcut", Kind: model.KindConfiguration}},
		Fallback:        fallbackItems(),
		TemporaryResult: "42",
		FileResults: []model.FileDescription{
			{Filename: "docs.md", Path: "/home/u/docs.md", Kind: "Document", Location: "/home/u"},
		},
		RepoResults: []model.RepoResult{
			{FullName: "example/docs", URL: "https://github.com/example/docs"},
		},
		RepoSearch: true,
	}

	items := Compose(q)
	if len(items) == 0 {
		t.Fatal("expected composed results")
	}
	lastTier := 0
	for i, item := range items {
		tier := tierOf(item, q)
		if tier < lastTier {
			t.Fatalf("item %d (%s, tier %d) precedes tier %d output", i, item.Name, tier, lastTier)
		}
		lastTier = tier
	}
	if tierOf(items[0], q) != 1 {
		t.Fatalf("URL-shaped query must surface the Open URL action first, got %#v", items[0])
	}
}

func TestComposeURLTier(t *testing.T) {
	q := Query{Text: "example.com/path", Fallback: fallbackItems()}
	items := Compose(q)
	open, ok := items[0].Action.(model.OpenURL)
	if !ok || open.URL != "http://example.com/path" {
		t.Fatalf("expected scheme-defaulted URL action, got %#v", items[0].Action)
	}

	q.Text = "https://example.com"
	items = Compose(q)
	open, ok = items[0].Action.(model.OpenURL)
	if !ok || open.URL != "https://example.com" {
		t.Fatalf("expected https URL kept as-is, got %#v", items[0].Action)
	}

	q.Text = "not a url"
	for _, item := range Compose(q) {
		if item.Name == "Open URL" {
			t.Fatal("non-URL query must not synthesize the Open URL action")
		}
	}
}

func TestComposeTemporaryResultOnlyWhenPresent(t *testing.T) {
	q := Query{Text: "2+2", TemporaryResult: "4", Fallback: fallbackItems()}
	items := Compose(q)
	if items[0].Kind != model.KindTemporary || items[0].Name != "4" {
		t.Fatalf("expected temporary result first, got %#v", items[0])
	}

	q.TemporaryResult = ""
	for _, item := range Compose(q) {
		if item.Kind == model.KindTemporary {
			t.Fatal("no temporary tier expected without a computed result")
		}
	}
}

func TestComposeFallbacksAlwaysPresentInConstantOrder(t *testing.T) {
	q := Query{Text: "zzzzqqqq", Fallback: fallbackItems()}
	items := Compose(q)
	if len(items) != 3 {
		t.Fatalf("expected exactly the fallback tier, got %d items", len(items))
	}
	for i, name := range []string{"Google Search", "Google Translate", "Google Maps"} {
		if items[i].Name != name {
			t.Fatalf("fallback %d should be %s, got %s", i, name, items[i].Name)
		}
	}
}

func TestComposeKeepsCrossTierDuplicates(t *testing.T) {
	// "Google Search" exists both as a catalog entry and a fallback; both
	// must appear, carrying their own actions.
	q := Query{
		Text:     "google search",
		Static:   []model.Item{{Name: "Google Search", Kind: model.KindConfiguration, Action: model.OpenURL{URL: "https://google.com"}}},
		Fallback: fallbackItems(),
	}
	seen := 0
	for _, item := range Compose(q) {
		if item.Name == "Google Search" {
			seen++
		}
	}
	if seen != 2 {
		t.Fatalf("expected the duplicate to survive in both tiers, got %d", seen)
	}
}

func TestComposeFileResultsKeepArrivalOrderAndShortenPaths(t *testing.T) {
	longDir := "/Users/someone/Library/Application Support/very/deep/nested/folder/structure"
	q := Query{
		Text:     "report",
		Fallback: fallbackItems(),
		FileResults: []model.FileDescription{
			{Filename: "b.txt", Path: longDir + "/b.txt", Kind: "Document", Location: longDir},
			{Filename: "a.txt", Path: "/tmp/a.txt", Kind: "Document", Location: "/tmp"},
		},
	}
	items := Compose(q)
	var files []model.Item
	for _, item := range items {
		if item.Kind == model.KindCustom && item.Path != "" {
			files = append(files, item)
		}
	}
	if len(files) != 2 || files[0].Name != "b.txt" || files[1].Name != "a.txt" {
		t.Fatalf("file results must keep arrival order: %#v", files)
	}
	if !strings.HasPrefix(files[0].Subtitle, "...") {
		t.Fatalf("long path should be shortened, got %q", files[0].Subtitle)
	}
	if files[1].Subtitle != "/tmp/a.txt" {
		t.Fatalf("short path should render verbatim, got %q", files[1].Subtitle)
	}
}

func TestShortenPathIsPureCharacterTruncation(t *testing.T) {
	// Truncation is by character count: the cut may land mid-segment rather
	// than on a path separator.
	path := "/aaaa/bbbb/cccc/dddd/eeee/ffff/gggg/hhhh/iiii/jjjj/kkkk/llll/file.txt"
	got := ShortenPath(path)
	want := "..." + path[len(path)-60:]
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(got) != 63 {
		t.Fatalf("expected 63 chars (ellipsis + 60), got %d", len(got))
	}
}

func TestComposeRepoTierGated(t *testing.T) {
	q := Query{
		Text:        "sol",
		Fallback:    fallbackItems(),
		RepoResults: []model.RepoResult{{FullName: "serendipious/sol", URL: "https://github.com/serendipious/sol"}},
	}
	for _, item := range Compose(q) {
		if item.Name == "serendipious/sol" {
			t.Fatal("repo results must not appear while the feature is disabled")
		}
	}

	q.RepoSearch = true
	items := Compose(q)
	last := items[len(items)-1]
	if last.Name != "serendipious/sol" {
		t.Fatalf("repo results belong in the last tier, got %#v", last)
	}
}

func TestComposeEmptyQueryReturnsFavoritesProjection(t *testing.T) {
	catalogItem := func(name string) model.Item {
		return model.Item{Name: name, Kind: model.KindConfiguration}
	}
	q := Query{
		Text:      "",
		Static:    []model.Item{catalogItem("Settings"), catalogItem("Scratchpad")},
		Custom:    []model.Item{catalogItem("Standup board")},
		Favorites: []string{"Scratchpad", "Gone forever", "Standup board"},
		Fallback:  fallbackItems(),
	}
	items := Compose(q)
	if len(items) != 2 {
		t.Fatalf("unresolvable favorites must be dropped, got %d items", len(items))
	}
	if items[0].Name != "Scratchpad" || items[1].Name != "Standup board" {
		t.Fatalf("favorites projection must keep stored order: %#v", items)
	}
}

func TestFavoritedBookmarkRendersOnEmptyQuery(t *testing.T) {
	bookmark := model.Item{
		Name:   "Release notes draft",
		Kind:   model.KindBookmark,
		Action: model.OpenURL{URL: "https://example.com/notes"},
	}
	q := Query{
		Text:         "",
		Static:       []model.Item{{Name: "Settings", Kind: model.KindConfiguration}},
		BookmarkSets: [][]model.Item{{bookmark}},
		Favorites:    []string{"Release notes draft"},
		Fallback:     fallbackItems(),
	}
	items := Compose(q)
	if len(items) != 1 || items[0].Name != "Release notes draft" {
		t.Fatalf("favorited bookmarks must resolve in the projection: %#v", items)
	}
	if items[0].Kind != model.KindBookmark {
		t.Fatalf("projection should return the bookmark itself, got %#v", items[0])
	}
}

func TestComposeBookmarksJoinFuzzyTier(t *testing.T) {
	q := Query{
		Text: "release notes",
		BookmarkSets: [][]model.Item{
			{{Name: "Release notes draft", Kind: model.KindBookmark, Action: model.OpenURL{URL: "https://example.com/notes"}}},
		},
		Fallback: fallbackItems(),
	}
	found := false
	for _, item := range Compose(q) {
		if item.Kind == model.KindBookmark {
			found = true
		}
	}
	if !found {
		t.Fatal("bookmark items should be matched in the fuzzy tier")
	}
}
