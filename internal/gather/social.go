package gather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/crosscheck/internal/cache"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/util"
	"github.com/ppiankov/crosscheck/internal/worker"
)

const socialSearchEndpoint = "https://www.reddit.com/search.json"

// SocialGatherer retrieves community discussion of a claim from Reddit's
// public search endpoint. Fetches are gated on robots.txt.
type SocialGatherer struct {
	httpClient *http.Client
	userAgent  string
	endpoint   string
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewSocialGatherer creates a social discussion gatherer
func NewSocialGatherer(timeout time.Duration, userAgent string, robots *util.RobotsChecker, limiter *worker.Limiter, resultCache cache.Cache, cacheTTL time.Duration) *SocialGatherer {
	return &SocialGatherer{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		endpoint:   socialSearchEndpoint,
		robots:     robots,
		limiter:    limiter,
		cache:      resultCache,
		cacheTTL:   cacheTTL,
	}
}

// Kind implements Gatherer
func (g *SocialGatherer) Kind() model.SourceKind { return model.SourceSocial }

// SetEndpoint overrides the search endpoint (used in tests)
func (g *SocialGatherer) SetEndpoint(endpoint string) { g.endpoint = endpoint }

// redditListing mirrors the subset of Reddit's search response we read
type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				Selftext   string  `json:"selftext"`
				Permalink  string  `json:"permalink"`
				Subreddit  string  `json:"subreddit"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search implements Gatherer
func (g *SocialGatherer) Search(ctx context.Context, query string, maxResults int) ([]model.EvidenceItem, error) {
	if items, ok := g.cached(query); ok {
		return truncate(items, maxResults), nil
	}

	searchURL := fmt.Sprintf("%s?q=%s&limit=%d&sort=relevance", g.endpoint, url.QueryEscape(query), maxResults)

	if g.robots != nil {
		allowed, err := g.robots.CanFetch(ctx, searchURL)
		if err == nil && !allowed {
			return nil, fmt.Errorf("%w: social search disallowed by robots.txt", model.ErrCollaboratorUnavailable)
		}
	}
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx, searchURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: social search: %v", model.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: social search status %d", model.ErrCollaboratorUnavailable, resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	var items []model.EvidenceItem
	for _, child := range listing.Data.Children {
		if len(items) >= maxResults {
			break
		}
		post := child.Data
		if post.Title == "" || post.Permalink == "" {
			continue
		}
		published := time.Unix(int64(post.CreatedUTC), 0).UTC()
		snippet := post.Selftext
		if len(snippet) > 280 {
			snippet = snippet[:280]
		}
		items = append(items, model.EvidenceItem{
			Kind:      model.SourceSocial,
			Title:     fmt.Sprintf("r/%s: %s", post.Subreddit, post.Title),
			Snippet:   snippet,
			URL:       "https://www.reddit.com" + post.Permalink,
			Published: &published,
			Rank:      len(items),
		})
	}

	g.store(query, items)
	return items, nil
}

// Consensus derives discussion-consensus strings from social items: how
// much discussion exists and which communities host it. The strings feed
// the reasoning context verbatim.
func Consensus(items []model.EvidenceItem) []string {
	if len(items) == 0 {
		return nil
	}

	counts := make(map[string]int)
	posts := 0
	for _, item := range items {
		if item.Kind != model.SourceSocial {
			continue
		}
		posts++
		if name, ok := strings.CutPrefix(item.Title, "r/"); ok {
			if sub, _, found := strings.Cut(name, ":"); found {
				counts[sub]++
			}
		}
	}
	if len(counts) == 0 {
		return nil
	}

	subs := make([]string, 0, len(counts))
	for sub := range counts {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool {
		if counts[subs[i]] != counts[subs[j]] {
			return counts[subs[i]] > counts[subs[j]]
		}
		return subs[i] < subs[j]
	})
	if len(subs) > 3 {
		subs = subs[:3]
	}

	return []string{fmt.Sprintf("Reddit (%d posts in r/%s): active community discussion found", posts, strings.Join(subs, ", r/"))}
}

func (g *SocialGatherer) cached(query string) ([]model.EvidenceItem, bool) {
	if g.cache == nil {
		return nil, false
	}
	data, ok := g.cache.Get(cache.SearchKey(string(model.SourceSocial), query))
	if !ok {
		return nil, false
	}
	var items []model.EvidenceItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (g *SocialGatherer) store(query string, items []model.EvidenceItem) {
	if g.cache == nil || len(items) == 0 {
		return
	}
	if data, err := json.Marshal(items); err == nil {
		_ = g.cache.Set(cache.SearchKey(string(model.SourceSocial), query), data, g.cacheTTL)
	}
}
