package pipeline

import "github.com/ppiankov/crosscheck/internal/model"

var educationTips = []string{
	"Always verify information from multiple credible sources",
	"Check the date and context of claims",
	"Be skeptical of sensational or emotionally charged content",
	"Use fact-checking websites for verification",
}

// educate is stage 4: a pure function of the accumulated result. It picks
// an educational topic, emits static tips, and derives one tailored-advice
// string from the verdict and confidence. It has no external dependency
// and never fails.
func (p *Pipeline) educate(result *model.PipelineResult) model.EducationResult {
	topic := "general"
	if result.Media != nil && result.Media.IsSynthetic {
		topic = "deepfake"
	} else if result.FactCheck.Verdict == model.VerdictFalse {
		topic = "fact_checking"
	}

	return model.EducationResult{
		Topic:          topic,
		Tips:           educationTips,
		TailoredAdvice: tailoredAdvice(result.FactCheck.Verdict, result.FactCheck.Confidence),
	}
}

func tailoredAdvice(verdict model.Verdict, confidence float64) string {
	switch {
	case verdict == model.VerdictFalse:
		return "This claim has been identified as false. Please do not share this information."
	case verdict == model.VerdictTrue:
		return "This claim has been verified as accurate from multiple sources."
	case confidence < 0.5:
		return "This claim cannot be verified with confidence. We're monitoring for updates."
	default:
		return "This claim has partial verification. Cross-check with additional sources."
	}
}

// recommend maps the final verdict to action recommendations. The 0.6
// threshold here only changes wording; it is distinct from the 0.65
// persistence threshold on purpose.
func (p *Pipeline) recommend(result *model.PipelineResult) []string {
	var recs []string

	verdict := result.FinalVerdict
	confidence := result.Confidence

	switch {
	case verdict == model.VerdictFalse || verdict == model.VerdictDeepfake:
		recs = append(recs,
			"DO NOT SHARE this content",
			"Inform others who may have shared it")
	case verdict == model.VerdictUncertain || confidence < p.config.Thresholds.Recommendation:
		recs = append(recs,
			"WAIT for verification before sharing",
			"You'll receive updates when more information is available")
	case verdict == model.VerdictTrue:
		recs = append(recs,
			"Content appears verified, but always maintain healthy skepticism",
			"Share responsibly with proper context")
	}

	if result.Media != nil && result.Media.IsSynthetic {
		recs = append(recs, "Report this deepfake content to platform moderators")
	}

	return recs
}
