package emoji

import "testing"

func TestSearchEmptyReturnsFullCatalog(t *testing.T) {
	got := Search("")
	if len(got) != len(catalog) {
		t.Fatalf("expected full catalog (%d), got %d", len(catalog), len(got))
	}
	if got[0].Char != catalog[0].Char {
		t.Errorf("empty query must keep canonical order, got %q first", got[0].Char)
	}
}

func TestSearchByKeyword(t *testing.T) {
	got := Search("rocket")
	if len(got) == 0 {
		t.Fatal("expected a match for rocket")
	}
	if got[0].Char != "🚀" {
		t.Errorf("best match = %q, want rocket", got[0].Char)
	}
}

func TestPickerFavoritesOrderedByUse(t *testing.T) {
	p := NewPicker()
	p.pick(byChar["⭐"])
	p.pick(byChar["🔥"])
	p.pick(byChar["🔥"])

	favorites := p.FavoritesRow()
	if len(favorites) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(favorites))
	}
	if favorites[0].Char != "🔥" {
		t.Errorf("most used should lead, got %q", favorites[0].Char)
	}
}

func TestPickerFavoritesBounded(t *testing.T) {
	p := NewPicker()
	for i := 0; i < PerRow+4; i++ {
		p.pick(catalog[i])
	}
	if got := len(p.FavoritesRow()); got > PerRow {
		t.Fatalf("favorites row width %d exceeds %d", got, PerRow)
	}
	if got := p.Recent().Len(); got > PerRow {
		t.Fatalf("recent store size %d exceeds %d", got, PerRow)
	}
}

func TestPickAtFavoritesOffset(t *testing.T) {
	p := NewPicker()
	p.pick(catalog[5]) // seed one favorite

	// Index 0 with an empty query hits the favorites row.
	got, ok := p.PickAt(0, "")
	if !ok || got.Char != catalog[5].Char {
		t.Fatalf("index 0 should resolve the favorite, got %q ok=%v", got.Char, ok)
	}

	// Index 1 falls through to the catalog start.
	got, ok = p.PickAt(1, "")
	if !ok || got.Char != catalog[0].Char {
		t.Fatalf("index past favorites should hit catalog[0], got %q ok=%v", got.Char, ok)
	}

	// With a query active there is no favorites offset.
	filtered := Search("rocket")
	got, ok = p.PickAt(0, "rocket")
	if !ok || got.Char != filtered[0].Char {
		t.Fatalf("queried index 0 should hit first filtered entry, got %q ok=%v", got.Char, ok)
	}
}

func TestPickAtOutOfRange(t *testing.T) {
	p := NewPicker()
	if _, ok := p.PickAt(len(catalog)+50, ""); ok {
		t.Fatal("out-of-range index should not resolve")
	}
	if _, ok := p.PickAt(-1, "rocket"); ok {
		t.Fatal("negative index should not resolve")
	}
}
