package gather

import (
	"net/url"
	"strings"
)

// CredibilityClassifier flags evidence from authoritative outlets. The
// allow-list is fixed per process; subdomains of a listed domain match.
type CredibilityClassifier struct {
	domains map[string]bool
}

// NewCredibilityClassifier builds a classifier from the domain allow-list
func NewCredibilityClassifier(domains []string) *CredibilityClassifier {
	c := &CredibilityClassifier{domains: make(map[string]bool, len(domains))}
	for _, d := range domains {
		c.domains[strings.ToLower(d)] = true
	}
	return c
}

// IsCredible reports whether the URL's host is on the allow-list
func (c *CredibilityClassifier) IsCredible(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(parsed.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	host = strings.TrimPrefix(host, "www.")

	if c.domains[host] {
		return true
	}
	for domain := range c.domains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}

	// Government and academic hosts count as authoritative regardless of
	// the allow-list
	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".edu") {
		return true
	}
	return false
}
