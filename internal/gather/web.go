package gather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ppiankov/crosscheck/internal/cache"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/worker"
)

const webSearchEndpoint = "https://html.duckduckgo.com/html/"

// WebGatherer retrieves general web results by scraping the DuckDuckGo
// HTML endpoint (no API key required)
type WebGatherer struct {
	httpClient  *http.Client
	userAgent   string
	endpoint    string
	credibility *CredibilityClassifier
	limiter     *worker.Limiter
	cache       cache.Cache
	cacheTTL    time.Duration
}

// NewWebGatherer creates a web gatherer. Cache may be nil to disable caching.
func NewWebGatherer(timeout time.Duration, userAgent string, credibility *CredibilityClassifier, limiter *worker.Limiter, resultCache cache.Cache, cacheTTL time.Duration) *WebGatherer {
	return &WebGatherer{
		httpClient:  &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		endpoint:    webSearchEndpoint,
		credibility: credibility,
		limiter:     limiter,
		cache:       resultCache,
		cacheTTL:    cacheTTL,
	}
}

// Kind implements Gatherer
func (g *WebGatherer) Kind() model.SourceKind { return model.SourceWeb }

// SetEndpoint overrides the search endpoint (used in tests)
func (g *WebGatherer) SetEndpoint(endpoint string) { g.endpoint = endpoint }

// Search implements Gatherer
func (g *WebGatherer) Search(ctx context.Context, query string, maxResults int) ([]model.EvidenceItem, error) {
	if items, ok := g.cached(query); ok {
		return truncate(items, maxResults), nil
	}

	searchURL := g.endpoint + "?q=" + url.QueryEscape(query)
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
		return nil, fmt.Errorf("%w: web search: %v", model.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: web search status %d", model.ErrCollaboratorUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	var items []model.EvidenceItem
	doc.Find("div.result").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Find("a.result__a").Text())
		href, _ := sel.Find("a.result__a").Attr("href")
		snippet := strings.TrimSpace(sel.Find("a.result__snippet").Text())
		if title == "" || href == "" {
			return true
		}

		resultURL := resolveRedirect(href)
		items = append(items, model.EvidenceItem{
			Kind:     model.SourceWeb,
			Title:    title,
			Snippet:  snippet,
			URL:      resultURL,
			Credible: g.credibility.IsCredible(resultURL),
			Rank:     len(items),
		})
		return len(items) < maxResults
	})

	g.store(query, items)
	return items, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links
func resolveRedirect(href string) string {
	if !strings.Contains(href, "uddg=") {
		if strings.HasPrefix(href, "//") {
			return "https:" + href
		}
		return href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func (g *WebGatherer) cached(query string) ([]model.EvidenceItem, bool) {
	if g.cache == nil {
		return nil, false
	}
	data, ok := g.cache.Get(cache.SearchKey(string(model.SourceWeb), query))
	if !ok {
		return nil, false
	}
	var items []model.EvidenceItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (g *WebGatherer) store(query string, items []model.EvidenceItem) {
	if g.cache == nil || len(items) == 0 {
		return
	}
	if data, err := json.Marshal(items); err == nil {
		_ = g.cache.Set(cache.SearchKey(string(model.SourceWeb), query), data, g.cacheTTL)
	}
}

func truncate(items []model.EvidenceItem, max int) []model.EvidenceItem {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
