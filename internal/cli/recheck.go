package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppiankov/crosscheck/internal/recheck"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	recheckWatch    bool
	recheckSchedule string
	recheckDelay    time.Duration
)

// recheckCmd represents the recheck command
var recheckCmd = &cobra.Command{
	Use:   "recheck",
	Short: "Re-verify pending claims",
	Long: `Recheck runs a sweep over the pending queue: every unresolved claim is
fact-checked again with fresh evidence, and claims that now clear the
resolution threshold leave the queue.

With --watch the sweep repeats on a cron schedule until interrupted.

Example:
  crosscheck recheck
  crosscheck recheck --delay 5s
  crosscheck recheck --watch --schedule "0 */6 * * *"`,
	RunE: runRecheck,
}

func init() {
	rootCmd.AddCommand(recheckCmd)

	recheckCmd.Flags().BoolVar(&recheckWatch, "watch", false, "keep sweeping on a cron schedule")
	recheckCmd.Flags().StringVar(&recheckSchedule, "schedule", "", "cron schedule for --watch (default from config)")
	recheckCmd.Flags().DurationVar(&recheckDelay, "delay", 0, "delay between claims (default from config)")
	recheckCmd.Flags().StringVar(&storeBackend, "store", "", "claims store backend (memory, sqlite)")
	recheckCmd.Flags().StringVar(&storePath, "db", "", "SQLite database path")
	recheckCmd.Flags().StringVar(&reasonerName, "reasoner", "", "verdict reasoner provider (openai, or empty to disable)")
}

func runRecheck(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if recheckDelay > 0 {
		cfg.Recheck.InterClaimDelay = recheckDelay
	}
	if recheckSchedule != "" {
		cfg.Recheck.Schedule = recheckSchedule
	}

	p, claims, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer claims.Close()

	sweeper := recheck.NewSweeper(claims, p, cfg.Recheck.InterClaimDelay, cfg.Thresholds.Resolution, verbose)

	if !recheckWatch {
		report, err := sweeper.Sweep(context.Background())
		if err != nil {
			return fmt.Errorf("sweep failed: %w", err)
		}
		printSweepReport(report)
		return nil
	}

	// Watch mode: sweep on the schedule until interrupted
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Recheck.Schedule, func() {
		report, err := sweeper.Sweep(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sweep failed: %v\n", err)
			return
		}
		printSweepReport(report)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", cfg.Recheck.Schedule, err)
	}

	fmt.Fprintf(os.Stderr, "Watching pending queue (schedule: %s), Ctrl-C to stop\n", cfg.Recheck.Schedule)
	scheduler.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	cancel()
	<-scheduler.Stop().Done()
	return nil
}

func printSweepReport(report recheck.Report) {
	fmt.Printf("Sweep complete: %d swept, %d resolved, %d failed\n",
		report.Swept, report.Resolved, report.Failed)
}
