package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGitHubClientSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/repositories" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "charm bubbletea" {
			t.Errorf("q = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [
			{"full_name": "charmbracelet/bubbletea", "html_url": "https://github.com/charmbracelet/bubbletea", "description": "A powerful little TUI framework", "stargazers_count": 27000}
		]}`))
	}))
	defer server.Close()

	client := NewGitHubClientWithBaseURL(server.URL)
	results, err := client.Search(context.Background(), "charm bubbletea", "tok123")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].FullName != "charmbracelet/bubbletea" || results[0].Stars != 27000 {
		t.Errorf("unexpected result: %#v", results[0])
	}
}

func TestGitHubClientSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewGitHubClientWithBaseURL(server.URL)
	if _, err := client.Search(context.Background(), "anything", ""); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
