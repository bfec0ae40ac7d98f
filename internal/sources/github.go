package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/serendipious/solGPT/internal/model"
)

const defaultGitHubBaseURL = "https://api.github.com"

// GitHubClient searches repositories. Feature-gated: callers only construct
// and invoke it when remote search is enabled.
type GitHubClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGitHubClient() *GitHubClient {
	return &GitHubClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultGitHubBaseURL,
	}
}

// NewGitHubClientWithBaseURL is used by tests to point at a fake server.
func NewGitHubClientWithBaseURL(base string) *GitHubClient {
	client := NewGitHubClient()
	client.baseURL = base
	return client
}

type repoSearchResponse struct {
	Items []struct {
		FullName    string `json:"full_name"`
		HTMLURL     string `json:"html_url"`
		Description string `json:"description"`
		Stars       int    `json:"stargazers_count"`
	} `json:"items"`
}

// Search issues a repository search. The token is optional; without it the
// unauthenticated rate limits apply.
func (c *GitHubClient) Search(ctx context.Context, query, token string) ([]model.RepoResult, error) {
	endpoint := fmt.Sprintf("%s/search/repositories?q=%s&per_page=10", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sources: build repo search request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sources: repo search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sources: repo search status %d", resp.StatusCode)
	}

	var parsed repoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("sources: decode repo search: %w", err)
	}

	out := make([]model.RepoResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		out = append(out, model.RepoResult{
			FullName:    item.FullName,
			URL:         item.HTMLURL,
			Description: item.Description,
			Stars:       item.Stars,
		})
	}
	return out, nil
}
