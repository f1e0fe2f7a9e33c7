package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pendingJSON bool

// pendingCmd represents the pending command
var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List claims queued for re-verification",
	Long: `Pending lists every stored claim whose verdict could not be settled:
claims with UNCERTAIN or OUTDATED_INFO verdicts, and claims whose
confidence sits below the resolution threshold. These are the claims the
recheck sweep will re-verify.

Example:
  crosscheck pending
  crosscheck pending --json`,
	RunE: runPending,
}

func init() {
	rootCmd.AddCommand(pendingCmd)

	pendingCmd.Flags().BoolVar(&pendingJSON, "json", false, "print the pending queue as JSON")
	pendingCmd.Flags().StringVar(&storeBackend, "store", "", "claims store backend (memory, sqlite)")
	pendingCmd.Flags().StringVar(&storePath, "db", "", "SQLite database path")
}

func runPending(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	claims, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer claims.Close()

	pending, err := claims.ListPending(context.Background())
	if err != nil {
		return fmt.Errorf("list pending claims: %w", err)
	}

	if pendingJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pending)
	}

	if len(pending) == 0 {
		fmt.Println("No pending claims.")
		return nil
	}

	fmt.Printf("%d pending claim(s):\n\n", len(pending))
	for _, c := range pending {
		fmt.Printf("  [%s] %s\n", c.Fingerprint[:12], c.Text)
		fmt.Printf("      verdict %s, confidence %.0f%%, checked %d time(s), last %s\n",
			c.Verdict, c.Confidence*100, c.CheckCount, c.LastChecked.Format("2006-01-02 15:04"))
	}
	return nil
}
