// Package github reads issues from the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// Ensure Client implements domain.IssueSource.
var _ domain.IssueSource = (*Client)(nil)

// DefaultPageSize is the maximum page size accepted by the issues endpoint.
const DefaultPageSize = 100

var linkNextPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client lists repository issues.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	pageSize   int
}

// NewClient creates a new GitHub client. An empty baseURL selects api.github.com.
func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if baseURL == "" {
		baseURL = domain.DefaultAPIURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   DefaultPageSize,
	}
}

// NewHTTPClient returns an http.Client that authenticates every request with token.
func NewHTTPClient(token string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &authTransport{
			token: token,
			base:  http.DefaultTransport,
		},
	}
}

// ListIssues returns every open and closed issue carrying label, following pagination.
// Pull requests, which the issues endpoint also returns, are skipped.
func (c *Client) ListIssues(ctx context.Context, repo domain.Repository, label string) ([]domain.Issue, error) {
	query := url.Values{}
	query.Set("labels", label)
	query.Set("state", "all")
	query.Set("per_page", strconv.Itoa(c.pageSize))
	next := fmt.Sprintf("%s/repos/%s/%s/issues?%s",
		c.baseURL, url.PathEscape(repo.Owner), url.PathEscape(repo.Name), query.Encode())

	var issues []domain.Issue
	for next != "" {
		var page []githubIssue
		link, err := c.doRequest(ctx, next, &page)
		if err != nil {
			return nil, fmt.Errorf("list issues of %s: %w", repo, err)
		}
		for _, gi := range page {
			if gi.PullRequest != nil {
				continue
			}
			issues = append(issues, gi.toDomain())
		}
		next = nextPageURL(link)
	}
	return issues, nil
}

// doRequest performs a GET request and decodes the JSON response into result.
// It returns the Link header for pagination.
func (c *Client) doRequest(ctx context.Context, rawURL string, result any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrUnexpectedResponse, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return resp.Header.Get("Link"), nil
}

// nextPageURL extracts the rel="next" target from a Link header.
func nextPageURL(link string) string {
	if m := linkNextPattern.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	return ""
}

// authTransport injects the bearer token into outgoing requests.
type authTransport struct {
	base  http.RoundTripper
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(r)
}

// GitHub API response types
type githubIssue struct {
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	ClosedAt    *time.Time    `json:"closed_at"`
	Assignee    *githubUser   `json:"assignee"`
	PullRequest *struct{}     `json:"pull_request"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	State       string        `json:"state"`
	HTMLURL     string        `json:"html_url"`
	Labels      []githubLabel `json:"labels"`
	Number      int           `json:"number"`
	Comments    int           `json:"comments"`
}

type githubLabel struct {
	Name string `json:"name"`
}

type githubUser struct {
	Login string `json:"login"`
}

func (gi githubIssue) toDomain() domain.Issue {
	labels := make([]string, 0, len(gi.Labels))
	for _, l := range gi.Labels {
		labels = append(labels, l.Name)
	}
	assignee := ""
	if gi.Assignee != nil {
		assignee = gi.Assignee.Login
	}
	return domain.Issue{
		Number:   gi.Number,
		Title:    gi.Title,
		Body:     gi.Body,
		State:    gi.State,
		Labels:   labels,
		Assignee: assignee,
		URL:      gi.HTMLURL,
		Comments: gi.Comments,
		Created:  gi.CreatedAt,
		Updated:  gi.UpdatedAt,
		Closed:   gi.ClosedAt,
	}
}
