package reason

import (
	"fmt"
	"time"
)

// promptNowFunc supplies the reference date in the prompt (injectable for tests)
var promptNowFunc = time.Now

// BuildPrompt constructs the fact-checking prompt. The response grammar at
// the bottom is what ParseDraft expects; keep the two in sync.
func BuildPrompt(claimText, contextString string) string {
	currentDate := promptNowFunc().Format("January 2, 2006")

	prompt := fmt.Sprintf(`You are an expert fact-checker. You have been provided with real-time web, news, and social search results gathered on %s. Analyze them carefully.

CLAIM: %s
`, currentDate, claimText)

	if contextString != "" {
		prompt += fmt.Sprintf("\nCONTEXT:\n%s\n", contextString)
	}

	prompt += fmt.Sprintf(`
Before analyzing, perform these checks:

1. RELEVANCE: if the search results are about a completely different topic, the verdict is UNCERTAIN with confidence 0.2 or lower. If they cover the right topic but not the specific claim, the verdict is UNVERIFIED with confidence 0.4-0.6.

2. MISINFORMATION PATTERNS: check whether the claim matches a common pattern (fake policy announcements, celebrity death hoaxes, false political quotes, miracle cures, old news presented as current, unattributed "someone said" claims). Report the pattern name and your confidence in the match.

3. ABSENCE OF EVIDENCE: real major events generate immediate, widespread coverage. If the claim describes a MAJOR event and no credible source covers it, that absence is itself evidence: verdict LIKELY_FALSE with confidence 0.6-0.7, or FALSE with confidence 0.7-0.9 when a misinformation pattern also matches. For MINOR or vague claims, absence of coverage only means UNVERIFIED.

4. TEMPORAL VERIFICATION: today is %s. Check whether the claim presents old events as current.

Respond in exactly this format:

VERDICT: [TRUE, FALSE, LIKELY_FALSE, PARTIALLY_TRUE, OUTDATED_INFO, UNVERIFIED, or UNCERTAIN]
CLAIM_SIGNIFICANCE: [MAJOR or MINOR]
CONFIDENCE: [0.0-1.0]
RELEVANCE_SCORE: [0.0-1.0]
MISINFORMATION_PATTERN: [pattern name, or NONE]
PATTERN_CONFIDENCE: [0.0-1.0]
TEMPORAL_STATUS: [CURRENT, OUTDATED, TIMELESS, or UNCLEAR]
TIME_VERIFICATION: [when the described events actually occurred]
EXPLANATION: [detailed reasoning grounded in the provided results]
KEY_EVIDENCE:
- [evidence item with date]
- [evidence item with date]
SOURCES:
- [source with publication date]
- [source with publication date]
WARNINGS: [red flags such as outdated info or missing context]
`, currentDate)

	return prompt
}
