package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/spf13/cobra"
)

var (
	checkFile    string
	checkType    string
	outJSON      string
	checkTimeout time.Duration
	storeBackend string
	storePath    string
	noCache      bool
	reasonerName string
	reasonerMdl  string
	detectorURL  string
	extractorURL string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Verify a claim or a media file",
	Long: `Check runs the full verification pipeline on a piece of content:
- Classify the content type
- Analyze media for synthetic manipulation (deepfakes, voice clones)
- Extract text from images and audio
- Gather evidence from news, web, and social sources
- Synthesize a verdict with confidence and recommendations

Unresolved claims are stored and re-verified by later recheck sweeps.

Example:
  crosscheck check "The Great Wall of China is visible from space"
  crosscheck check --file video.mp4
  crosscheck check "caption text" --file photo.jpg --type image
  crosscheck check "some claim" --json report.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Input flags
	checkCmd.Flags().StringVar(&checkFile, "file", "", "media file reference to analyze")
	checkCmd.Flags().StringVar(&checkType, "type", "", "content type hint (text, image, video, audio, url)")

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "", "write the full report as JSON to this path")

	// Pipeline flags
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 3*time.Minute, "overall check timeout")
	checkCmd.Flags().StringVar(&storeBackend, "store", "", "claims store backend (memory, sqlite)")
	checkCmd.Flags().StringVar(&storePath, "db", "", "SQLite database path")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the search-result cache")

	// Collaborator flags
	checkCmd.Flags().StringVar(&reasonerName, "reasoner", "", "verdict reasoner provider (openai, or empty to disable)")
	checkCmd.Flags().StringVar(&reasonerMdl, "reasoner-model", "", "reasoner model name")
	checkCmd.Flags().StringVar(&detectorURL, "detector-url", "", "media forensics service URL")
	checkCmd.Flags().StringVar(&extractorURL, "extractor-url", "", "text extraction (OCR/transcription) service URL")
}

// buildConfig applies command flags on top of the defaults
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache
	if storeBackend != "" {
		cfg.Store.Backend = storeBackend
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}
	if reasonerName != "" {
		cfg.Reasoner.Provider = reasonerName
	}
	if reasonerMdl != "" {
		cfg.Reasoner.Model = reasonerMdl
	}
	if detectorURL != "" {
		cfg.Forensics.DetectorURL = detectorURL
	}
	if extractorURL != "" {
		cfg.Forensics.ExtractorURL = extractorURL
	}
	return cfg
}

func runCheck(cmd *cobra.Command, args []string) error {
	var content string
	if len(args) == 1 {
		content = args[0]
	}
	if content == "" && checkFile == "" {
		return fmt.Errorf("nothing to check: provide claim text, --file, or both")
	}

	hint, err := parseTypeHint(checkType)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg := buildConfig()
	p, claims, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer claims.Close()

	result, err := p.Run(ctx, content, checkFile, hint)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	printResult(result)

	if outJSON != "" {
		if err := writeJSON(result, outJSON); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Report written: %s\n", outJSON)
	}

	return nil
}

// parseTypeHint maps the --type flag to a content type. Empty means
// auto-detect.
func parseTypeHint(s string) (model.ContentType, error) {
	switch s {
	case "":
		return "", nil
	case "text":
		return model.ContentText, nil
	case "image":
		return model.ContentImage, nil
	case "video":
		return model.ContentVideo, nil
	case "audio":
		return model.ContentAudio, nil
	case "url":
		return model.ContentURL, nil
	default:
		return "", fmt.Errorf("unknown content type: %s (supported: text, image, video, audio, url)", s)
	}
}

// printResult renders the human-readable report
func printResult(result *model.PipelineResult) {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Crosscheck Report (%s)\n", result.RunID)
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Overall:     %s\n", result.Overall)
	fmt.Printf("  Verdict:     %s\n", result.FinalVerdict)
	fmt.Printf("  Confidence:  %.0f%%\n", result.Confidence*100)

	if result.Media != nil {
		fmt.Println()
		fmt.Printf("  Media type:  %s\n", result.Media.MediaType)
		fmt.Printf("  Synthetic:   %v (%.0f%%)\n", result.Media.IsSynthetic, result.Media.Confidence*100)
		if result.Media.TextWordCount > 0 {
			fmt.Printf("  Extracted:   %d words\n", result.Media.TextWordCount)
		}
	}

	fc := result.FactCheck
	if !fc.Skipped {
		fmt.Println()
		fmt.Printf("  Sources:     %d found, %d credible\n", fc.WebSourcesFound, fc.CredibleSources)
		if fc.Explanation != "" {
			fmt.Printf("  Explanation: %s\n", fc.Explanation)
		}
		for _, w := range fc.Warnings {
			fmt.Printf("  ⚠ %s\n", w)
		}
		if fc.StoredForRecheck {
			fmt.Printf("  Saved for periodic re-verification\n")
		}
	}

	if card := fc.ContextCard; card != nil {
		fmt.Println()
		fmt.Printf("  Context:     %s\n", card.VerdictExplanation)
		fmt.Printf("  Why:         %s\n", card.WhyThisVerdict)
		if card.PatternAlert != "" {
			fmt.Printf("  Pattern:     %s\n", card.PatternAlert)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("  Recommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
	fmt.Println()
}

// writeJSON writes the full pipeline result to a file
func writeJSON(result *model.PipelineResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
