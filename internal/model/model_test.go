package model

import "testing"

func TestVerdict_IsKnown(t *testing.T) {
	for _, v := range KnownVerdicts {
		if !v.IsKnown() {
			t.Errorf("Expected %s to be known", v)
		}
	}
	for _, v := range []Verdict{VerdictNoTextContent, VerdictDeepfake, VerdictAuthenticNoText, "MAYBE", ""} {
		if v.IsKnown() {
			t.Errorf("Expected %s not to be in the reasoner taxonomy", v)
		}
	}
}

func TestVerdict_ForcesPending(t *testing.T) {
	if !VerdictUncertain.ForcesPending() || !VerdictOutdatedInfo.ForcesPending() {
		t.Error("Expected UNCERTAIN and OUTDATED_INFO to force pending")
	}
	for _, v := range []Verdict{VerdictTrue, VerdictFalse, VerdictLikelyFalse, VerdictPartiallyTrue, VerdictUnverified} {
		if v.ForcesPending() {
			t.Errorf("Expected %s not to force pending", v)
		}
	}
}

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name       string
		verdict    Verdict
		confidence float64
		want       ClaimStatus
	}{
		{"high confidence true", VerdictTrue, 0.9, StatusResolved},
		{"exactly at threshold", VerdictFalse, 0.65, StatusResolved},
		{"just below threshold", VerdictTrue, 0.64, StatusPending},
		{"uncertain ignores confidence", VerdictUncertain, 1.0, StatusPending},
		{"outdated ignores confidence", VerdictOutdatedInfo, 1.0, StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStatus(tt.verdict, tt.confidence, 0.65); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCombineStatus(t *testing.T) {
	tests := []struct {
		name        string
		isSynthetic bool
		verdict     Verdict
		want        OverallStatus
	}{
		{"deepfake with false content", true, VerdictFalse, OverallDoubleAlert},
		{"deepfake with true content", true, VerdictTrue, OverallMixedResult},
		{"deepfake, content unknown", true, VerdictNoTextContent, OverallDeepfake},
		{"deepfake, uncertain content", true, VerdictUncertain, OverallDeepfake},
		{"authentic false content", false, VerdictFalse, OverallFalseContent},
		{"authentic true content", false, VerdictTrue, OverallVerified},
		{"authentic uncertain", false, VerdictUncertain, OverallUncertain},
		{"authentic unverified", false, VerdictUnverified, OverallUncertain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombineStatus(tt.isSynthetic, tt.verdict); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestContentType_HasMedia(t *testing.T) {
	for _, c := range []ContentType{ContentImage, ContentVideo, ContentAudio} {
		if !c.HasMedia() {
			t.Errorf("Expected %s to have media", c)
		}
	}
	for _, c := range []ContentType{ContentText, ContentURL} {
		if c.HasMedia() {
			t.Errorf("Expected %s not to have media", c)
		}
	}
}
