package gather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/ppiankov/crosscheck/internal/cache"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/worker"
)

const newsSearchEndpoint = "https://news.google.com/rss/search"

// NewsGatherer retrieves news coverage through the Google News RSS search
// feed
type NewsGatherer struct {
	parser      *gofeed.Parser
	endpoint    string
	credibility *CredibilityClassifier
	limiter     *worker.Limiter
	cache       cache.Cache
	cacheTTL    time.Duration
}

// NewNewsGatherer creates a news gatherer. Cache may be nil to disable caching.
func NewNewsGatherer(timeout time.Duration, userAgent string, credibility *CredibilityClassifier, limiter *worker.Limiter, resultCache cache.Cache, cacheTTL time.Duration) *NewsGatherer {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}
	return &NewsGatherer{
		parser:      parser,
		endpoint:    newsSearchEndpoint,
		credibility: credibility,
		limiter:     limiter,
		cache:       resultCache,
		cacheTTL:    cacheTTL,
	}
}

// Kind implements Gatherer
func (g *NewsGatherer) Kind() model.SourceKind { return model.SourceNews }

// SetEndpoint overrides the feed endpoint (used in tests)
func (g *NewsGatherer) SetEndpoint(endpoint string) { g.endpoint = endpoint }

// Search implements Gatherer
func (g *NewsGatherer) Search(ctx context.Context, query string, maxResults int) ([]model.EvidenceItem, error) {
	if items, ok := g.cached(query); ok {
		return truncate(items, maxResults), nil
	}

	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", g.endpoint, url.QueryEscape(query))
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx, feedURL); err != nil {
			return nil, err
		}
	}

	feed, err := g.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: news search: %v", model.ErrCollaboratorUnavailable, err)
	}

	var items []model.EvidenceItem
	for _, entry := range feed.Items {
		if len(items) >= maxResults {
			break
		}
		item := model.EvidenceItem{
			Kind:      model.SourceNews,
			Title:     strings.TrimSpace(entry.Title),
			Snippet:   stripHTML(entry.Description),
			URL:       entry.Link,
			Published: entry.PublishedParsed,
			Credible:  g.credibility.IsCredible(entry.Link),
			Rank:      len(items),
		}
		if item.Title == "" || item.URL == "" {
			continue
		}
		items = append(items, item)
	}

	g.store(query, items)
	return items, nil
}

// stripHTML reduces a feed description to plain text
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(tokenizer.Token().Data)
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (g *NewsGatherer) cached(query string) ([]model.EvidenceItem, bool) {
	if g.cache == nil {
		return nil, false
	}
	data, ok := g.cache.Get(cache.SearchKey(string(model.SourceNews), query))
	if !ok {
		return nil, false
	}
	var items []model.EvidenceItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (g *NewsGatherer) store(query string, items []model.EvidenceItem) {
	if g.cache == nil || len(items) == 0 {
		return
	}
	if data, err := json.Marshal(items); err == nil {
		_ = g.cache.Set(cache.SearchKey(string(model.SourceNews), query), data, g.cacheTTL)
	}
}
