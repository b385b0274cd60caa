// Package github fetches the public profile and repository list for the
// configured user. It is a read-only adapter: both calls degrade to empty
// values on failure so the portfolio stays available when GitHub is not.
package github

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

const (
	// CallTimeout bounds each outbound GitHub call. One attempt, no retries.
	CallTimeout = 10 * time.Second

	// RepoPageSize caps the repository listing; results beyond the first
	// page are not fetched.
	RepoPageSize = 100
)

// Client wraps the go-github client for the two profile/repository reads.
type Client struct {
	gh *gogithub.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate API root (tests).
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		if u, err := url.Parse(raw); err == nil {
			c.gh.BaseURL = u
		}
	}
}

// NewClient builds a GitHub client. With a token the calls are authenticated
// and get the higher rate limit; without one they run anonymously.
func NewClient(token string, opts ...Option) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = CallTimeout

	c := &Client{gh: gogithub.NewClient(hc)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProfileAndRepos performs the two reads. Either half degrades to its
// empty value on any transport or status failure instead of returning an
// error.
func (c *Client) FetchProfileAndRepos(ctx context.Context, username string) (domain.Profile, []domain.Repository) {
	return c.fetchProfile(ctx, username), c.fetchRepos(ctx, username)
}

func (c *Client) fetchProfile(ctx context.Context, username string) domain.Profile {
	cctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	user, _, err := c.gh.Users.Get(cctx, username)
	if err != nil {
		log.Printf("[warn] github: profile fetch failed for %s: %v", username, err)
		return domain.Profile{}
	}

	return domain.Profile{
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Bio:         user.GetBio(),
		HTMLURL:     user.GetHTMLURL(),
		Location:    user.GetLocation(),
		PublicRepos: user.GetPublicRepos(),
	}
}

func (c *Client) fetchRepos(ctx context.Context, username string) []domain.Repository {
	cctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	opts := &gogithub.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gogithub.ListOptions{PerPage: RepoPageSize},
	}
	repos, _, err := c.gh.Repositories.ListByUser(cctx, username, opts)
	if err != nil {
		log.Printf("[warn] github: repo listing failed for %s: %v", username, err)
		return []domain.Repository{}
	}

	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, domain.Repository{
			ID:          r.GetID(),
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			HTMLURL:     r.GetHTMLURL(),
			Homepage:    r.GetHomepage(),
			CreatedAt:   formatTime(r.GetCreatedAt()),
			UpdatedAt:   formatTime(r.GetUpdatedAt()),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Size:        r.GetSize(),
		})
	}
	return out
}

func formatTime(ts gogithub.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
