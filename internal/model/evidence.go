package model

import "time"

// SourceKind identifies which retrieval backend produced an evidence item
type SourceKind string

const (
	SourceNews   SourceKind = "news"
	SourceWeb    SourceKind = "web"
	SourceSocial SourceKind = "social"
)

// EvidenceItem is one normalized retrieval result. Items are constructed
// per pipeline run and persisted only inside a stored claim's evidence bundle.
type EvidenceItem struct {
	Kind      SourceKind `json:"kind"`                // news, web, social
	Title     string     `json:"title"`               // Result title or post headline
	Snippet   string     `json:"snippet,omitempty"`   // Short excerpt, HTML stripped
	URL       string     `json:"url"`                 // Full URL
	Published *time.Time `json:"published,omitempty"` // Publication date when the backend reports one
	Credible  bool       `json:"credible"`            // Domain appears on the authoritative allow-list
	Rank      int        `json:"rank"`                // Original rank within its backend (0-based)
}

// EvidenceBundle is the opaque structured record stored alongside a claim:
// everything the pipeline gathered and reasoned over during one check.
type EvidenceBundle struct {
	Items         []EvidenceItem       `json:"items,omitempty"`        // Merged retrieval results
	Consensus     []string             `json:"consensus,omitempty"`    // Social-discussion consensus strings
	Media         *MediaAnalysisResult `json:"media,omitempty"`        // Forensics output, when media was analyzed
	ReasonerRaw   string               `json:"reasoner_raw,omitempty"` // Unparsed reasoner response
	CredibleCount int                  `json:"credible_count"`         // Credible sources found this run
}
