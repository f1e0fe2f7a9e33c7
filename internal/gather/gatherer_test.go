package gather

import (
	"testing"

	"github.com/ppiankov/crosscheck/internal/model"
)

func TestMerge_DeterministicOrder(t *testing.T) {
	news := []model.EvidenceItem{
		{Kind: model.SourceNews, Title: "news-0", Rank: 0},
		{Kind: model.SourceNews, Title: "news-1", Rank: 1},
	}
	web := []model.EvidenceItem{
		{Kind: model.SourceWeb, Title: "web-0", Rank: 0},
	}
	social := []model.EvidenceItem{
		{Kind: model.SourceSocial, Title: "social-0", Rank: 0},
	}

	// Completion order must not matter
	a := Merge(news, web, social)
	b := Merge(social, web, news)
	c := Merge(web, social, news)

	wantTitles := []string{"news-0", "news-1", "web-0", "social-0"}
	for _, merged := range [][]model.EvidenceItem{a, b, c} {
		if len(merged) != len(wantTitles) {
			t.Fatalf("Expected %d items, got %d", len(wantTitles), len(merged))
		}
		for i, want := range wantTitles {
			if merged[i].Title != want {
				t.Errorf("Expected %s at position %d, got %s", want, i, merged[i].Title)
			}
		}
	}
}

func TestMerge_Empty(t *testing.T) {
	if merged := Merge(nil, nil, nil); len(merged) != 0 {
		t.Errorf("Expected empty merge, got %d items", len(merged))
	}
}

func TestCountCredible(t *testing.T) {
	items := []model.EvidenceItem{
		{Credible: true},
		{Credible: false},
		{Credible: true},
	}
	if got := CountCredible(items); got != 2 {
		t.Errorf("Expected 2 credible, got %d", got)
	}
}

func TestCredibilityClassifier(t *testing.T) {
	c := NewCredibilityClassifier([]string{"reuters.com", "bbc.co.uk"})

	tests := []struct {
		url  string
		want bool
	}{
		{"https://reuters.com/world/article", true},
		{"https://www.reuters.com/world/article", true},
		{"https://uk.reuters.com/article", true},
		{"https://reuters.com:443/article", true},
		{"https://bbc.co.uk/news", true},
		{"https://notreuters.com/article", false},
		{"https://reuters.com.evil.io/article", false},
		{"https://example.com/reuters.com", false},
		{"https://cdc.gov/page", true},
		{"https://mit.edu/research", true},
		{"", false},
		{"://bad", false},
	}
	for _, tt := range tests {
		if got := c.IsCredible(tt.url); got != tt.want {
			t.Errorf("IsCredible(%q): expected %v, got %v", tt.url, tt.want, got)
		}
	}
}
