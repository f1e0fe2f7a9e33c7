package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/crosscheck/internal/model"
)

// nowFunc is the pipeline clock (injectable for tests)
var nowFunc = func() time.Time { return time.Now().UTC() }

var extensionTypes = map[string]model.ContentType{
	".jpg": model.ContentImage, ".jpeg": model.ContentImage,
	".png": model.ContentImage, ".gif": model.ContentImage, ".webp": model.ContentImage,
	".mp4": model.ContentVideo, ".avi": model.ContentVideo,
	".mov": model.ContentVideo, ".mkv": model.ContentVideo,
	".mp3": model.ContentAudio, ".wav": model.ContentAudio,
	".m4a": model.ContentAudio, ".ogg": model.ContentAudio,
}

// intake is stage 1: determine the content type. A caller-supplied hint
// skips classification entirely (fast path); otherwise the type is derived
// from the file extension, falling back to text.
func (p *Pipeline) intake(content, fileReference string, hint model.ContentType) model.IntakeResult {
	result := model.IntakeResult{
		HasText:   strings.TrimSpace(content) != "",
		Timestamp: nowFunc(),
	}

	if hint != "" {
		result.ContentType = hint
		result.FastMode = true
	} else {
		result.ContentType = classifyContent(content, fileReference)
	}

	result.HasMedia = result.ContentType.HasMedia()
	return result
}

// classifyContent inspects the payload and file extension
func classifyContent(content, fileReference string) model.ContentType {
	if fileReference == "" {
		if isLikelyURL(content) {
			return model.ContentURL
		}
		return model.ContentText
	}

	ext := strings.ToLower(filepath.Ext(fileReference))
	if kind, ok := extensionTypes[ext]; ok {
		return kind
	}
	return model.ContentText
}

func isLikelyURL(content string) bool {
	trimmed := strings.TrimSpace(content)
	return !strings.ContainsAny(trimmed, " \t\n") &&
		(strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://"))
}
