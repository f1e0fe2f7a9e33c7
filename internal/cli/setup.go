package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/crosscheck/internal/cache"
	"github.com/ppiankov/crosscheck/internal/forensics"
	"github.com/ppiankov/crosscheck/internal/gather"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/pipeline"
	"github.com/ppiankov/crosscheck/internal/reason"
	"github.com/ppiankov/crosscheck/internal/store"
	"github.com/ppiankov/crosscheck/internal/util"
	"github.com/ppiankov/crosscheck/internal/worker"
)

// openStore creates the claims store selected by the configuration.
// Callers own the returned store and must Close it.
func openStore(cfg *model.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemoryStore(cfg.Thresholds.Resolution), nil
	case "sqlite", "":
		return store.NewSQLiteStore(cfg.Store.Path, cfg.Thresholds.Resolution)
	default:
		return nil, fmt.Errorf("unknown store backend: %s (supported: memory, sqlite)", cfg.Store.Backend)
	}
}

// buildPipeline wires every collaborator from the configuration and
// returns the pipeline together with the claims store it writes to.
func buildPipeline(cfg *model.Config) (*pipeline.Pipeline, store.Store, error) {
	claims, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	limiter := worker.NewLimiter(cfg.HTTP.RatePerHost, cfg.HTTP.RateBurst)
	robots := util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	credibility := gather.NewCredibilityClassifier(cfg.Credibility.Domains)

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	web := gather.NewWebGatherer(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, credibility, limiter, resultCache, cfg.Cache.TTL)
	news := gather.NewNewsGatherer(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, credibility, limiter, resultCache, cfg.Cache.TTL)
	social := gather.NewSocialGatherer(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, robots, limiter, resultCache, cfg.Cache.TTL)

	// API key comes from the environment unless the config set it
	if cfg.Reasoner.Provider == "openai" && cfg.Reasoner.APIKey == "" {
		cfg.Reasoner.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Reasoner.APIKey == "" {
			// No key means no reasoner; the pipeline degrades to UNCERTAIN
			fmt.Fprintf(os.Stderr, "OPENAI_API_KEY not set, verdict reasoning disabled\n")
			cfg.Reasoner.Provider = ""
		}
	}
	reasoner, err := reason.NewReasoner(cfg.Reasoner)
	if err != nil {
		_ = claims.Close()
		return nil, nil, err
	}

	var detector forensics.MediaForensics
	if cfg.Forensics.DetectorURL != "" {
		detector = forensics.NewHTTPDetector(cfg.Forensics.DetectorURL, cfg.Forensics.Timeout)
	}
	var extractor forensics.TextExtractor
	if cfg.Forensics.ExtractorURL != "" {
		extractor = forensics.NewHTTPExtractor(cfg.Forensics.ExtractorURL, cfg.Forensics.Timeout)
	}

	p := pipeline.New(cfg, detector, extractor, web, news, social, reasoner, claims)
	return p, claims, nil
}
