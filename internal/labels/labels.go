// Package labels fetches pull request labels from GitHub.
//
// The lookup is read-only and independent of the snapshot model; the
// surrounding pipeline uses it as an optional gate before deploying.
package labels

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/google/go-github/v68/github"

	oerrors "github.com/project-koku/snapdeploy/internal/errors"
)

// Client wraps the GitHub pulls API.
type Client struct {
	gh *github.Client
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a different API root, used in tests.
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		parsed, err := url.Parse(base + "/")
		if err != nil {
			return fmt.Errorf("parsing base URL: %w", err)
		}
		c.gh.BaseURL = parsed
		return nil
	}
}

// NewClient creates a label lookup client. A nil httpClient uses http.DefaultClient;
// unauthenticated access is fine for public repositories.
func NewClient(httpClient *http.Client, opts ...Option) (*Client, error) {
	c := &Client{gh: github.NewClient(httpClient)}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Fetch returns the labels of a pull request, sorted for stable output.
func (c *Client) Fetch(ctx context.Context, owner, repo string, prNumber int) ([]string, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, owner, repo, prNumber)
	if err != nil {
		return nil, oerrors.NewConnectivityError(
			fmt.Sprintf("fetching %s/%s pull request %d", owner, repo, prNumber), err)
	}

	names := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		names = append(names, label.GetName())
	}
	slices.Sort(names)
	return names, nil
}

// Has reports whether the label set contains the given name.
func Has(names []string, name string) bool {
	return slices.Contains(names, name)
}
