package search

import (
	"testing"

	"github.com/serendipious/solGPT/internal/model"
)

func configItem(name string) model.Item {
	return model.Item{Name: name, Kind: model.KindConfiguration}
}

func TestMatchFindsApproximateNames(t *testing.T) {
	catalog := []model.Item{
		configItem("Safari"),
		configItem("Settings"),
		configItem("Terminal"),
	}
	got := Match("sfri", catalog, nil)
	if len(got) == 0 || got[0].Name != "Safari" {
		t.Fatalf("expected Safari as best match, got %#v", got)
	}
}

func TestMatchIndexesAlias(t *testing.T) {
	catalog := []model.Item{
		{Name: "Toggle OS theme", Alias: "dark", Kind: model.KindConfiguration},
		configItem("Downloads"),
	}
	got := Match("dark", catalog, nil)
	if len(got) == 0 || got[0].Name != "Toggle OS theme" {
		t.Fatalf("expected alias match, got %#v", got)
	}
}

func TestMatchBreaksScoreTiesByUsageBias(t *testing.T) {
	// The indexed strings "A zoom" / "B zoom" match the query identically,
	// so only the bias can order the pair.
	catalog := []model.Item{
		{Name: "A", Alias: "zoom", Kind: model.KindConfiguration},
		{Name: "B", Alias: "zoom", Kind: model.KindConfiguration},
	}

	noBias := Match("zoom", catalog, nil)
	if len(noBias) != 2 || noBias[0].Name != "A" {
		t.Fatalf("with no bias, original order must hold: %#v", noBias)
	}

	favorsB := func(key string) int {
		if key == "B" {
			return 5
		}
		return 0
	}
	biased := Match("zoom", catalog, favorsB)
	if len(biased) != 2 || biased[0].Name != "B" {
		t.Fatalf("expected B first under bias: %#v", biased)
	}
}

func TestMatchBiasCannotBeatBetterScore(t *testing.T) {
	catalog := []model.Item{
		{Name: "Mail", Kind: model.KindApplication},
		{Name: "Manual install", Kind: model.KindApplication},
	}
	heavyBias := func(key string) int {
		if key == "Manual install" {
			return 100
		}
		return 0
	}
	ranked := Match("mail", catalog, heavyBias)
	if len(ranked) == 0 || ranked[0].Name != "Mail" {
		t.Fatalf("bias must only break ties, not beat better scores: %#v", ranked)
	}
}

func TestMatchDeterministicForIdenticalInput(t *testing.T) {
	catalog := []model.Item{
		configItem("Calendar"),
		configItem("Calculator"),
		configItem("Camera"),
	}
	first := Match("ca", catalog, nil)
	second := Match("ca", catalog, nil)
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("order differs at %d: %s vs %s", i, first[i].Name, second[i].Name)
		}
	}
}

func TestMatchEmptyQuery(t *testing.T) {
	if got := Match("", []model.Item{configItem("Safari")}, nil); got != nil {
		t.Fatalf("empty query should match nothing, got %#v", got)
	}
}
