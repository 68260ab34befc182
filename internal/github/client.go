package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"

	"github.com/richhaase/pr-prompt/internal/domain"
)

// ErrNotFound indicates the pull request does not exist (HTTP 404).
var ErrNotFound = errors.New("pull request not found")

// ErrAuth indicates the request was rejected for credential reasons
// (HTTP 401 or 403).
var ErrAuth = errors.New("GitHub authentication failed")

// ErrInvalidResponse indicates the API answered but the payload is missing
// required fields.
var ErrInvalidResponse = errors.New("invalid pull request response")

// Client fetches pull request metadata.
type Client struct {
	api *gh.Client
}

// NewClient creates an authenticated client. An empty baseURL targets the
// public GitHub API; otherwise baseURL points at a GitHub Enterprise or
// test endpoint.
func NewClient(token, baseURL string) (*Client, error) {
	api := gh.NewClient(nil).WithAuthToken(token)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		api.BaseURL = u
	}
	return &Client{api: api}, nil
}

// FetchPullRequest retrieves the metadata for one pull request. It returns
// ErrNotFound for a missing PR, ErrAuth for credential failures and
// ErrInvalidResponse when the payload lacks a head or base ref; any other
// transport failure is wrapped distinctly.
func (c *Client) FetchPullRequest(ctx context.Context, owner, repo string, number int) (domain.PullRequestInfo, error) {
	pr, resp, err := c.api.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusNotFound:
				return domain.PullRequestInfo{}, fmt.Errorf("%w: %s/%s#%d", ErrNotFound, owner, repo, number)
			case http.StatusUnauthorized, http.StatusForbidden:
				return domain.PullRequestInfo{}, fmt.Errorf("%w: %v", ErrAuth, err)
			}
		}
		return domain.PullRequestInfo{}, fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}

	info := domain.PullRequestInfo{
		Number:       number,
		SourceBranch: pr.GetHead().GetRef(),
		TargetBranch: pr.GetBase().GetRef(),
		Title:        pr.GetTitle(),
		Description:  pr.GetBody(),
	}
	if info.SourceBranch == "" || info.TargetBranch == "" {
		return domain.PullRequestInfo{}, fmt.Errorf("%w: missing head or base ref for #%d", ErrInvalidResponse, number)
	}
	return info, nil
}
