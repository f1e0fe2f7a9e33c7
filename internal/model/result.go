package model

import "time"

// IntakeResult is the output of the content-intake stage
type IntakeResult struct {
	ContentType ContentType `json:"content_type"`
	HasText     bool        `json:"has_text"`
	HasMedia    bool        `json:"has_media"`
	FastMode    bool        `json:"fast_mode"` // Caller supplied a content-type hint
	Timestamp   time.Time   `json:"timestamp"`
}

// ContextCard explains why a verdict was reached, in terms a reader can
// audit: what was searched, what was found, and what tipped the decision.
type ContextCard struct {
	VerdictExplanation string `json:"verdict_explanation"`
	ConfidenceLevel    string `json:"confidence_level"`
	Reasoning          string `json:"reasoning"`
	WhyThisVerdict     string `json:"why_this_verdict"`
	PatternAlert       string `json:"pattern_alert,omitempty"` // Set when a misinformation pattern matched
}

// FactCheckResult is the output of the fact-check stage
type FactCheckResult struct {
	Verdict          Verdict        `json:"verdict"`
	Confidence       float64        `json:"confidence"`
	Explanation      string         `json:"explanation,omitempty"`
	TemporalStatus   TemporalStatus `json:"temporal_status,omitempty"`
	TimeVerification string         `json:"time_verification,omitempty"`
	KeyEvidence      []string       `json:"key_evidence,omitempty"`
	Sources          []string       `json:"sources,omitempty"`
	Warnings         []string       `json:"warnings,omitempty"`
	SocialConsensus  []string       `json:"social_consensus,omitempty"`
	WebSourcesFound  int            `json:"web_sources_found"`
	CredibleSources  int            `json:"credible_sources_found"`
	ContextCard      *ContextCard   `json:"context_card,omitempty"`
	Skipped          bool           `json:"skipped"`       // Insufficient-text path synthesized this result
	StoredForRecheck bool           `json:"stored_for_recheck"`
}

// EducationResult is the output of the education stage. It is a pure
// function of the accumulated pipeline result and never fails.
type EducationResult struct {
	Topic          string   `json:"topic"` // deepfake, fact_checking, general
	Tips           []string `json:"tips"`
	TailoredAdvice string   `json:"tailored_advice"`
}

// OverallStatus combines media authenticity and content verdict into one
// headline category
type OverallStatus string

const (
	OverallDoubleAlert  OverallStatus = "DOUBLE_ALERT"      // Synthetic media carrying false content
	OverallMixedResult  OverallStatus = "MIXED_RESULT"      // Synthetic media carrying true content
	OverallDeepfake     OverallStatus = "DEEPFAKE_DETECTED" // Synthetic media, content uncertain
	OverallFalseContent OverallStatus = "FALSE_CONTENT"     // Authentic media, false content
	OverallVerified     OverallStatus = "VERIFIED"          // Authentic media, true content
	OverallUncertain    OverallStatus = "UNCERTAIN"
)

// CombineStatus derives the overall status from the media-synthetic flag
// and the content verdict
func CombineStatus(isSynthetic bool, verdict Verdict) OverallStatus {
	switch {
	case isSynthetic && verdict == VerdictFalse:
		return OverallDoubleAlert
	case isSynthetic && verdict == VerdictTrue:
		return OverallMixedResult
	case isSynthetic:
		return OverallDeepfake
	case verdict == VerdictFalse:
		return OverallFalseContent
	case verdict == VerdictTrue:
		return OverallVerified
	default:
		return OverallUncertain
	}
}

// PipelineResult is the per-request output of one orchestrator run.
// The orchestrator exclusively owns its construction; the final verdict
// and confidence are copied from the fact-check stage unless a short
// circuit set them directly.
type PipelineResult struct {
	RunID           string               `json:"run_id"` // Unique per run, for report sharing
	Input           string               `json:"input"`
	FileReference   string               `json:"file_reference,omitempty"`
	Intake          IntakeResult         `json:"intake"`
	Media           *MediaAnalysisResult `json:"media,omitempty"`
	FactCheck       FactCheckResult      `json:"fact_check"`
	Education       EducationResult      `json:"education"`
	FinalVerdict    Verdict              `json:"final_verdict"`
	Confidence      float64              `json:"confidence"`
	Overall         OverallStatus        `json:"overall_status"`
	Recommendations []string             `json:"recommendations"`
	StartedAt       time.Time            `json:"started_at"`
	FinishedAt      time.Time            `json:"finished_at"`
}
